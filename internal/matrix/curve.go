// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import "github.com/tls-conformance/matrix-runner/internal/registry"

var (
	CurveP256 = Curve{Name: "P-256", MinProtocol: registry.VersionSSLv3}
	CurveP384 = Curve{Name: "P-384", MinProtocol: registry.VersionSSLv3}
	CurveP521 = Curve{Name: "P-521", MinProtocol: registry.VersionSSLv3}

	// X25519 is only exercised through the TLS 1.3 supported_groups path.
	CurveX25519 = Curve{Name: "X25519", MinProtocol: registry.VersionTLS13}
)

// Curves returns the curve catalog in generation order.
func Curves() []Curve {
	return []Curve{CurveP256, CurveP384, CurveP521, CurveX25519}
}
