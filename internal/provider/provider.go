// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// Package provider models the peer TLS implementations the matrix runs
// against. Each provider answers the capability queries the constraint
// filter asks and knows how to assemble its own peer command line.
package provider

import (
	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// Provider extends the filter-facing capability interface with the pieces
// the runner needs to launch a peer process.
type Provider interface {
	matrix.Provider

	// ServerCommand and ClientCommand build the argv for running this
	// implementation as the respective peer of tc.
	ServerCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error)
	ClientCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error)
}

// S2N is the implementation under test.
type S2N struct{}

func (S2N) Name() string { return "s2n" }

func (S2N) SupportsProtocol(protocol *registry.Version, cert matrix.Certificate) bool {
	// s2nd and s2nc speak every version in the matrix.
	return true
}

func (S2N) SupportsCipher(cipher matrix.Cipher, curve *matrix.Curve) bool {
	return true
}

// OpenSSL is an openssl 1.1.1+ peer.
type OpenSSL struct{}

func (OpenSSL) Name() string { return "openssl" }

func (OpenSSL) SupportsProtocol(protocol *registry.Version, cert matrix.Certificate) bool {
	if protocol == nil {
		return true
	}
	// Distribution builds ship with no-ssl3.
	if *protocol == registry.VersionSSLv3 {
		return false
	}
	// RSA-PSS-PSS certificates require the TLS 1.2 signature_algorithms
	// extension or newer.
	if cert != nil && cert.Algorithm() == matrix.AlgorithmRSAPSS {
		return *protocol >= registry.VersionTLS12
	}
	return true
}

func (OpenSSL) SupportsCipher(cipher matrix.Cipher, curve *matrix.Curve) bool {
	if cipher.PQ {
		return false
	}
	if s, ok := registry.LookupSuite(cipher.Name); ok {
		return s.OpenSSL110Compatible
	}
	return true
}

// GnuTLS is a gnutls-cli / gnutls-serv peer driven through priority strings.
type GnuTLS struct{}

func (GnuTLS) Name() string { return "gnutls" }

func (GnuTLS) SupportsProtocol(protocol *registry.Version, cert matrix.Certificate) bool {
	return true
}

func (GnuTLS) SupportsCipher(cipher matrix.Cipher, curve *matrix.Curve) bool {
	return !cipher.PQ
}

var providers = map[string]Provider{
	"s2n":     S2N{},
	"openssl": OpenSSL{},
	"gnutls":  GnuTLS{},
}

// Lookup returns the provider registered under name.
func Lookup(name string) (Provider, bool) {
	p, ok := providers[name]
	return p, ok
}

// Names returns the registered provider names in a fixed order.
func Names() []string {
	return []string{"s2n", "openssl", "gnutls"}
}
