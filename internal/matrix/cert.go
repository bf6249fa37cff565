// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// Cert is a test certificate profile. It satisfies Certificate; the key and
// certificate files behind a profile are generated by the certs package.
type Cert struct {
	// Name identifies the profile and the file stem its material is
	// written under, e.g. "rsa_2048_sha256".
	Name string

	// SigAlgorithm is the signature algorithm family: "RSA", "EC" or
	// "RSAPSS".
	SigAlgorithm string

	// SigCurve is the curve baked into an EC key, empty otherwise.
	SigCurve string
}

func (c *Cert) Algorithm() string { return c.SigAlgorithm }

// CompatibleWithCipher reports whether the certificate's key can
// authenticate a handshake using cipher. TLS 1.3 suites carry no
// authentication component and accept any certificate.
func (c *Cert) CompatibleWithCipher(cipher Cipher) bool {
	if cipher.MinVersion == registry.VersionTLS13 && !cipher.PQ {
		return true
	}
	switch c.SigAlgorithm {
	case "EC":
		return strings.Contains(cipher.Name, "ECDSA")
	case AlgorithmRSAPSS:
		// PSS keys sign only; they cannot serve RSA key exchange.
		return !strings.Contains(cipher.Name, "ECDSA") &&
			(strings.Contains(cipher.Name, "ECDHE") || strings.Contains(cipher.Name, "DHE"))
	default:
		return !strings.Contains(cipher.Name, "ECDSA")
	}
}

// CompatibleWithCurve reports whether the certificate's signature can be
// produced when curve is the only one on offer. Only EC certificates are
// curve-bound.
func (c *Cert) CompatibleWithCurve(curve Curve) bool {
	if c.SigAlgorithm != "EC" {
		return true
	}
	return c.SigCurve == curve.Name
}

var (
	CertRSA2048    = &Cert{Name: "rsa_2048_sha256", SigAlgorithm: "RSA"}
	CertRSA3072    = &Cert{Name: "rsa_3072_sha384", SigAlgorithm: "RSA"}
	CertRSA4096    = &Cert{Name: "rsa_4096_sha512", SigAlgorithm: "RSA"}
	CertECDSA256   = &Cert{Name: "ecdsa_p256_sha256", SigAlgorithm: "EC", SigCurve: "P-256"}
	CertECDSA384   = &Cert{Name: "ecdsa_p384_sha384", SigAlgorithm: "EC", SigCurve: "P-384"}
	CertRSAPSS2048 = &Cert{Name: "rsa_pss_2048_sha256", SigAlgorithm: AlgorithmRSAPSS}
)

// Certificates returns the certificate profile catalog in generation order.
func Certificates() []*Cert {
	return []*Cert{
		CertRSA2048,
		CertRSA3072,
		CertRSA4096,
		CertECDSA256,
		CertECDSA384,
		CertRSAPSS2048,
	}
}

// LookupCertificate returns the profile registered under name.
func LookupCertificate(name string) (*Cert, bool) {
	for _, c := range Certificates() {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
