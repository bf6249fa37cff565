// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// combination is one point in a testcase's parameter space. Unlike the
// filter descriptor it keeps concrete certificate profiles so the runner
// can locate the generated key material.
type combination struct {
	protocol   *registry.Version
	cipher     *matrix.Cipher
	curve      *matrix.Curve
	cert       *matrix.Cert
	clientCert *matrix.Cert
}

// descriptor builds the filter descriptor for this combination with p as
// the queried peer.
func (c combination) descriptor(p matrix.Provider) matrix.TestCase {
	tc := matrix.TestCase{
		Protocol: c.protocol,
		Provider: p,
		Cipher:   c.cipher,
		Curve:    c.curve,
	}
	if c.cert != nil {
		tc.Certificate = c.cert
	}
	if c.clientCert != nil {
		tc.ClientCertificate = c.clientCert
	}
	return tc
}

// deselected reports whether either peer's capabilities rule the
// combination out.
func (c combination) deselected(client, server matrix.Provider, flags matrix.Flags) (string, bool) {
	if name, bad := matrix.FailingRule(c.descriptor(client), flags); bad {
		return name, true
	}
	return matrix.FailingRule(c.descriptor(server), flags)
}

func (c combination) String() string {
	var parts []string
	if c.protocol != nil {
		parts = append(parts, "protocol="+c.protocol.String())
	}
	if c.cipher != nil {
		parts = append(parts, "cipher="+c.cipher.Name)
	}
	if c.curve != nil {
		parts = append(parts, "curve="+c.curve.Name)
	}
	if c.cert != nil {
		parts = append(parts, "cert="+c.cert.Name)
	}
	if c.clientCert != nil {
		parts = append(parts, "client_cert="+c.clientCert.Name)
	}
	if len(parts) == 0 {
		return "unconstrained"
	}
	return strings.Join(parts, " ")
}

func versionPtr(v registry.Version) *registry.Version { return &v }

func cipherPtr(c matrix.Cipher) *matrix.Cipher { return &c }

func curvePtr(c matrix.Curve) *matrix.Curve { return &c }

// allProtocols is the protocol dimension most testcases cross over.
var allProtocols = []registry.Version{
	registry.VersionSSLv3,
	registry.VersionTLS10,
	registry.VersionTLS11,
	registry.VersionTLS12,
	registry.VersionTLS13,
}

// expandProtocolsCiphersCerts crosses the three core dimensions.
func expandProtocolsCiphersCerts(protocols []registry.Version, ciphers []matrix.Cipher, certList []*matrix.Cert) []combination {
	var combos []combination
	for _, p := range protocols {
		for _, ci := range ciphers {
			for _, ce := range certList {
				combos = append(combos, combination{
					protocol: versionPtr(p),
					cipher:   cipherPtr(ci),
					cert:     ce,
				})
			}
		}
	}
	return combos
}

// summaryLine is the CSV record written per combination.
func summaryLine(client, server matrix.Provider, testcase string, c combination, res resultType) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s", client.Name(), server.Name(), testcase, c, res)
}
