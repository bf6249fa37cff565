// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import "github.com/tls-conformance/matrix-runner/internal/registry"

// TLS 1.3 suites. These carry no key-exchange or authentication component,
// so they have no registry entry and no GnuTLS priority string.
var (
	CipherAES128GCMSHA256        = Cipher{Name: "TLS_AES_128_GCM_SHA256", MinVersion: registry.VersionTLS13}
	CipherAES256GCMSHA384        = Cipher{Name: "TLS_AES_256_GCM_SHA384", MinVersion: registry.VersionTLS13}
	CipherChaCha20Poly1305SHA256 = Cipher{Name: "TLS_CHACHA20_POLY1305_SHA256", MinVersion: registry.VersionTLS13}
)

// Post-quantum hybrid cipher preference lists. Peers treat these as named
// preference policies rather than single suites.
var (
	CipherKMSPQ = Cipher{Name: "KMS-PQ-TLS-1-0-2020-07", MinVersion: registry.VersionTLS10, PQ: true}
	CipherPQ    = Cipher{Name: "PQ-TLS-1-0-2021-05-24", MinVersion: registry.VersionTLS10, PQ: true}
)

var ciphers []Cipher

var ciphersByName map[string]Cipher

func init() {
	for _, s := range registry.Suites() {
		ciphers = append(ciphers, Cipher{Name: s.Name, MinVersion: s.MinVersion})
	}
	ciphers = append(ciphers,
		CipherAES128GCMSHA256,
		CipherAES256GCMSHA384,
		CipherChaCha20Poly1305SHA256,
		CipherKMSPQ,
		CipherPQ,
	)

	ciphersByName = make(map[string]Cipher, len(ciphers))
	for _, c := range ciphers {
		ciphersByName[c.Name] = c
	}
}

// Ciphers returns the full cipher catalog in generation order: the legacy
// registry suites first, then TLS 1.3 suites, then PQ preference lists.
// Callers must not modify the returned slice.
func Ciphers() []Cipher {
	return ciphers
}

// LookupCipher returns the catalog entry registered under name.
func LookupCipher(name string) (Cipher, bool) {
	c, ok := ciphersByName[name]
	return c, ok
}
