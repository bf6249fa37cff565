// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// Package pqkeys generates the KEM key material post-quantum testcases feed
// to their peers. Keys are derived from a run seed so a failing combination
// can be replayed with identical inputs.
package pqkeys

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
)

// kemForCipher names the KEM negotiated by each post-quantum cipher
// preference.
var kemForCipher = map[string]string{
	"KMS-PQ-TLS-1-0-2020-07": "Kyber512",
	"PQ-TLS-1-0-2021-05-24":  "Kyber768",
}

// Key is a KEM key pair together with the scheme that produced it.
type Key struct {
	Scheme kem.Scheme

	sk []byte
	pk []byte
}

// Generate derives the KEM key pair for a post-quantum cipher from seed.
// The same seed and cipher always yield the same key pair.
func Generate(cipher matrix.Cipher, seed []byte) (*Key, error) {
	if !cipher.PQ {
		return nil, fmt.Errorf("cipher %s is not post-quantum", cipher.Name)
	}
	name, ok := kemForCipher[cipher.Name]
	if !ok {
		return nil, fmt.Errorf("no KEM registered for cipher %s", cipher.Name)
	}
	sch := schemes.ByName(name)
	if sch == nil {
		return nil, fmt.Errorf("KEM %s not supported", name)
	}

	kemSeed := make([]byte, sch.SeedSize())
	r := hkdf.New(sha256.New, seed, []byte(cipher.Name), []byte("matrix-runner pq key"))
	if _, err := io.ReadFull(r, kemSeed); err != nil {
		return nil, err
	}
	pk, sk := sch.DeriveKeyPair(kemSeed)

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal KEM public key: %s", err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal KEM secret key: %s", err)
	}
	return &Key{Scheme: sch, sk: skBytes, pk: pkBytes}, nil
}

// Marshal returns the serialized key pair: two length-prefixed vectors,
// secret key first.
func (k *Key) Marshal() []byte {
	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.sk)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.pk)
	})
	return b.BytesOrPanic()
}

// PublicKey returns the encoded public share.
func (k *Key) PublicKey() []byte {
	return k.pk
}

// Parse reads a serialized key pair back.
func Parse(sch kem.Scheme, data []byte) (*Key, error) {
	s := cryptobyte.String(data)
	var sk, pk cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&sk) || !s.ReadUint16LengthPrefixed(&pk) || !s.Empty() {
		return nil, errors.New("malformed KEM key pair")
	}
	return &Key{Scheme: sch, sk: sk, pk: pk}, nil
}
