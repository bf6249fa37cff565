// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package certs

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
)

// TODO: x509.CreateCertificate gives us no way to mark an RSA subject key
// as PSS-only (id-RSASSA-PSS SPKI), so the rsa_pss profile carries a plain
// rsaEncryption key with a PSS issuer signature. Peers that insist on a
// PSS-only SPKI need material generated outside this tool.

type keySpec struct {
	rsaBits int
	curve   elliptic.Curve
}

var keySpecs = map[string]keySpec{
	"rsa_2048_sha256":     {rsaBits: 2048},
	"rsa_3072_sha384":     {rsaBits: 3072},
	"rsa_4096_sha512":     {rsaBits: 4096},
	"ecdsa_p256_sha256":   {curve: elliptic.P256()},
	"ecdsa_p384_sha384":   {curve: elliptic.P384()},
	"rsa_pss_2048_sha256": {rsaBits: 2048},
}

// rootSigner generates the CA key. The root is always ECDSA P-384; profiles
// only vary the leaf.
func rootSigner(rng io.Reader) (crypto.Signer, error) {
	return ecdsa.GenerateKey(elliptic.P384(), rng)
}

// leafSigner generates the subject key for a certificate profile.
func leafSigner(profile *matrix.Cert, rng io.Reader) (crypto.Signer, error) {
	spec, ok := keySpecs[profile.Name]
	if !ok {
		return nil, fmt.Errorf("no key spec for certificate profile %s", profile.Name)
	}
	if spec.curve != nil {
		return ecdsa.GenerateKey(spec.curve, rng)
	}
	return rsa.GenerateKey(rng, spec.rsaBits)
}
