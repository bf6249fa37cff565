// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package provider

import (
	"strings"
	"testing"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

func v(ver registry.Version) *registry.Version { return &ver }

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("%s not registered", name)
		}
		if p.Name() != name {
			t.Errorf("registered as %s, names itself %s", name, p.Name())
		}
	}
	if _, ok := Lookup("boringssl"); ok {
		t.Error("unregistered provider must not resolve")
	}
}

func TestOpenSSLProtocolSupport(t *testing.T) {
	var o OpenSSL
	if o.SupportsProtocol(v(registry.VersionSSLv3), nil) {
		t.Error("openssl must reject SSLv3")
	}
	if !o.SupportsProtocol(nil, nil) {
		t.Error("nil protocol is unconstrained and must be supported")
	}
	if !o.SupportsProtocol(v(registry.VersionTLS13), nil) {
		t.Error("openssl must support TLS 1.3")
	}

	pss := matrix.CertRSAPSS2048
	if o.SupportsProtocol(v(registry.VersionTLS11), pss) {
		t.Error("RSA-PSS certificates need TLS 1.2 or newer")
	}
	if !o.SupportsProtocol(v(registry.VersionTLS12), pss) {
		t.Error("RSA-PSS certificates work at TLS 1.2")
	}
}

func TestOpenSSLCipherSupport(t *testing.T) {
	var o OpenSSL

	rc4, ok := matrix.LookupCipher("RC4-MD5")
	if !ok {
		t.Fatal("RC4-MD5 missing from catalog")
	}
	if o.SupportsCipher(rc4, nil) {
		t.Error("openssl 1.1.x builds dropped RC4")
	}

	gcm, ok := matrix.LookupCipher("AES128-GCM-SHA256")
	if !ok {
		t.Fatal("AES128-GCM-SHA256 missing from catalog")
	}
	if !o.SupportsCipher(gcm, nil) {
		t.Error("openssl must support AES128-GCM-SHA256")
	}

	pq, ok := matrix.LookupCipher("KMS-PQ-TLS-1-0-2020-07")
	if !ok {
		t.Fatal("PQ preference missing from catalog")
	}
	if o.SupportsCipher(pq, nil) {
		t.Error("openssl has no PQ preference policies")
	}
}

func TestGnuTLSCipherSupport(t *testing.T) {
	var g GnuTLS
	pq, _ := matrix.LookupCipher("KMS-PQ-TLS-1-0-2020-07")
	if g.SupportsCipher(pq, nil) {
		t.Error("gnutls has no PQ preference policies")
	}
	aes, _ := matrix.LookupCipher("AES128-SHA")
	if !g.SupportsCipher(aes, nil) {
		t.Error("gnutls must support AES128-SHA")
	}
}

func TestGnuTLSServerCommandPriority(t *testing.T) {
	cipher, _ := matrix.LookupCipher("ECDHE-RSA-AES256-GCM-SHA384")
	tc := matrix.TestCase{
		Protocol: v(registry.VersionTLS12),
		Cipher:   &cipher,
	}
	args, err := GnuTLS{}.ServerCommand(tc, PeerOptions{Port: 4433, CertPath: "c.crt", KeyPath: "c.key"})
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "NONE:+COMP-NULL:+CTYPE-ALL:+CURVE-ALL:+ECDHE-RSA:+AES-256-GCM:+AEAD:+VERS-TLS1.2") {
		t.Errorf("priority string missing suite and version tokens: %s", joined)
	}
}

func TestGnuTLSCommandTLS13SkipsSelector(t *testing.T) {
	tc := matrix.TestCase{Protocol: v(registry.VersionTLS13)}
	args, err := GnuTLS{}.ClientCommand(tc, PeerOptions{Host: "localhost", Port: 4433})
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "VERS-") {
		t.Errorf("TLS 1.3 must not be forced through a version token: %s", joined)
	}
}

func TestGnuTLSCommandRejectsUnregisteredCipher(t *testing.T) {
	pq, _ := matrix.LookupCipher("KMS-PQ-TLS-1-0-2020-07")
	tc := matrix.TestCase{Cipher: &pq}
	if _, err := (GnuTLS{}).ServerCommand(tc, PeerOptions{Port: 4433}); err == nil {
		t.Error("ciphers without a registry priority string cannot be selected on gnutls")
	}
}

func TestOpenSSLCommandCipherFlags(t *testing.T) {
	legacy, _ := matrix.LookupCipher("AES256-SHA")
	tc := matrix.TestCase{Protocol: v(registry.VersionTLS12), Cipher: &legacy}
	args, _ := OpenSSL{}.ClientCommand(tc, PeerOptions{Host: "localhost", Port: 4433})
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-cipher AES256-SHA") || !strings.Contains(joined, "-tls1_2") {
		t.Errorf("unexpected client args: %s", joined)
	}

	tls13, _ := matrix.LookupCipher("TLS_AES_256_GCM_SHA384")
	tc = matrix.TestCase{Protocol: v(registry.VersionTLS13), Cipher: &tls13}
	args, _ = OpenSSL{}.ClientCommand(tc, PeerOptions{Host: "localhost", Port: 4433})
	joined = strings.Join(args, " ")
	if !strings.Contains(joined, "-ciphersuites TLS_AES_256_GCM_SHA384") {
		t.Errorf("TLS 1.3 suites go through -ciphersuites: %s", joined)
	}
	if strings.Contains(joined, "-cipher ") {
		t.Errorf("TLS 1.3 suites must not use -cipher: %s", joined)
	}
}

func TestClientAuthArgs(t *testing.T) {
	tc := matrix.TestCase{ClientCertificate: matrix.CertRSA2048}
	opts := PeerOptions{Host: "localhost", Port: 4433, CertPath: "client.crt", KeyPath: "client.key"}

	args, _ := OpenSSL{}.ClientCommand(tc, opts)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-cert client.crt") {
		t.Errorf("openssl client must present the client certificate: %s", joined)
	}

	serverArgs, _ := OpenSSL{}.ServerCommand(tc, PeerOptions{Port: 4433, CertPath: "s.crt", KeyPath: "s.key"})
	joined = strings.Join(serverArgs, " ")
	if !strings.Contains(joined, "-Verify") {
		t.Errorf("openssl server must demand client auth: %s", joined)
	}

	s2nArgs, _ := S2N{}.ServerCommand(tc, PeerOptions{Port: 4433, CertPath: "s.crt", KeyPath: "s.key"})
	joined = strings.Join(s2nArgs, " ")
	if !strings.Contains(joined, "--require-client-auth") {
		t.Errorf("s2nd must demand client auth: %s", joined)
	}
}
