// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// Package matrix decides which combinations of test parameters are
// semantically valid to execute. A TestCase describes one candidate
// combination; Invalid judges it against the protocol and implementation
// restrictions the harness knows about. The package holds no mutable state
// and is safe for concurrent use.
package matrix

import (
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// Cipher is a cipher suite as addressed by the test matrix. The catalog is a
// superset of the registry's legacy table: TLS 1.3 suites and post-quantum
// preference lists never appear in peer priority strings, so they live here
// rather than in the registry.
type Cipher struct {
	Name       string
	MinVersion registry.Version

	// PQ marks hybrid post-quantum cipher preferences.
	PQ bool
}

// Curve is an elliptic-curve parameter set under test.
type Curve struct {
	Name string

	// MinProtocol is the lowest protocol version that can negotiate the
	// curve. X25519 is only wired up for TLS 1.3 here.
	MinProtocol registry.Version
}

// Provider answers capability queries for one peer TLS implementation.
// Implementations must treat a nil protocol as unconstrained and report it
// supported.
type Provider interface {
	Name() string
	SupportsProtocol(protocol *registry.Version, cert Certificate) bool
	SupportsCipher(cipher Cipher, curve *Curve) bool
}

// Certificate answers compatibility queries for one test certificate.
type Certificate interface {
	// Algorithm returns the signature algorithm family, e.g. "RSA", "EC"
	// or "RSAPSS".
	Algorithm() string
	CompatibleWithCipher(cipher Cipher) bool
	CompatibleWithCurve(curve Curve) bool
}

// TestCase describes one candidate parameter combination. Every field is
// optional; a nil field means the combination is unconstrained along that
// dimension and never disqualifies it.
type TestCase struct {
	Protocol          *registry.Version
	Provider          Provider
	Certificate       Certificate
	ClientCertificate Certificate
	Cipher            *Cipher
	Curve             *Curve
}
