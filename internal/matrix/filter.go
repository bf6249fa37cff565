// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import "github.com/tls-conformance/matrix-runner/internal/registry"

// AlgorithmRSAPSS is the signature algorithm family of pure RSA-PSS-PSS
// certificates. Only TLS 1.3 defines them; earlier versions carry PSS
// signatures via RSA-PSS-RSAE instead.
const AlgorithmRSAPSS = "RSAPSS"

// rule is one independent deselection predicate. Rules never depend on each
// other's outcome and treat absent descriptor fields as non-disqualifying.
type rule struct {
	name  string
	fires func(tc TestCase, flags Flags) bool
}

var rules = []rule{
	{"rsa-pss-cert-below-tls13", func(tc TestCase, _ Flags) bool {
		if tc.Protocol == nil || *tc.Protocol == registry.VersionTLS13 {
			return false
		}
		if tc.ClientCertificate != nil && tc.ClientCertificate.Algorithm() == AlgorithmRSAPSS {
			return true
		}
		return tc.Certificate != nil && tc.Certificate.Algorithm() == AlgorithmRSAPSS
	}},
	{"provider-protocol", func(tc TestCase, _ Flags) bool {
		return tc.Provider != nil && !tc.Provider.SupportsProtocol(tc.Protocol, nil)
	}},
	{"pq-cipher-disabled", func(tc TestCase, flags Flags) bool {
		return tc.Cipher != nil && tc.Cipher.PQ && (flags.NoPQ || flags.FIPSMode)
	}},
	{"cipher-above-protocol", func(tc TestCase, _ Flags) bool {
		return tc.Cipher != nil && tc.Protocol != nil && tc.Cipher.MinVersion > *tc.Protocol
	}},
	// Ciphersuites from before TLS 1.3 cannot be negotiated under TLS 1.3,
	// whatever their numeric minimum says.
	// https://wiki.openssl.org/index.php/TLS1.3#Differences_with_TLS1.2_and_below
	{"legacy-cipher-under-tls13", func(tc TestCase, _ Flags) bool {
		return tc.Cipher != nil && tc.Protocol != nil &&
			*tc.Protocol == registry.VersionTLS13 && tc.Cipher.MinVersion < *tc.Protocol
	}},
	{"provider-cipher", func(tc TestCase, _ Flags) bool {
		return tc.Cipher != nil && tc.Provider != nil &&
			!tc.Provider.SupportsCipher(*tc.Cipher, tc.Curve)
	}},
	{"provider-protocol-with-cert", func(tc TestCase, _ Flags) bool {
		return tc.Certificate != nil && tc.Protocol != nil && tc.Provider != nil &&
			!tc.Provider.SupportsProtocol(tc.Protocol, tc.Certificate)
	}},
	{"certificate-cipher", func(tc TestCase, _ Flags) bool {
		return tc.Certificate != nil && tc.Cipher != nil &&
			!tc.Certificate.CompatibleWithCipher(*tc.Cipher)
	}},
	// When a curve is pinned, every signature in the handshake must use it.
	{"certificate-curve", func(tc TestCase, _ Flags) bool {
		if tc.Curve == nil {
			return false
		}
		if tc.Certificate != nil && !tc.Certificate.CompatibleWithCurve(*tc.Curve) {
			return true
		}
		return tc.ClientCertificate != nil && !tc.ClientCertificate.CompatibleWithCurve(*tc.Curve)
	}},
	{"curve-above-protocol", func(tc TestCase, _ Flags) bool {
		return tc.Curve != nil && tc.Protocol != nil && tc.Curve.MinProtocol > *tc.Protocol
	}},
}

// Invalid reports whether the combination described by tc must be skipped.
// It is pure: the verdict depends only on tc and flags.
func Invalid(tc TestCase, flags Flags) bool {
	_, invalid := FailingRule(tc, flags)
	return invalid
}

// FailingRule returns the name of the first rule that deselects tc, for
// diagnostics. The rule list is ordered but the rules are independent, so
// any firing rule alone is sufficient grounds to skip.
func FailingRule(tc TestCase, flags Flags) (string, bool) {
	for _, r := range rules {
		if r.fires(tc, flags) {
			return r.name, true
		}
	}
	return "", false
}
