// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
)

func readCert(t *testing.T, path string) *x509.Certificate {
	t.Helper()
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		t.Fatalf("%s: no PEM block", path)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatal(err)
	}
	return cert
}

func TestMakeLeafCertificate(t *testing.T) {
	dir := t.TempDir()
	config := &Config{
		Hostnames: []string{"localhost"},
		ValidFrom: time.Now(),
		ValidFor:  time.Hour,
	}

	rootCert := filepath.Join(dir, "root.crt")
	rootKey := filepath.Join(dir, "root.key")
	if err := MakeRootCertificate(config, rootCert, rootKey); err != nil {
		t.Fatal(err)
	}
	root := readCert(t, rootCert)
	if !root.IsCA {
		t.Error("root must be a CA")
	}

	profile := matrix.CertECDSA256
	leafPath := CertPath(dir, profile)
	err := MakeLeafCertificate(profile, config, rootCert, rootKey, leafPath, KeyPath(dir, profile))
	if err != nil {
		t.Fatal(err)
	}
	leaf := readCert(t, leafPath)

	if err := leaf.CheckSignatureFrom(root); err != nil {
		t.Errorf("leaf not signed by root: %s", err)
	}
	pub, ok := leaf.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		t.Fatalf("expected an ECDSA key, got %T", leaf.PublicKey)
	}
	if pub.Curve != elliptic.P256() {
		t.Error("profile key must be on P-256")
	}
	if err := leaf.VerifyHostname("localhost"); err != nil {
		t.Error(err)
	}
}

func TestClientAuthFlag(t *testing.T) {
	dir := t.TempDir()
	config := &Config{
		Hostnames: []string{"localhost"},
		ValidFrom: time.Now(),
		ValidFor:  time.Hour,
		ForClient: true,
	}

	rootCert := filepath.Join(dir, "root.crt")
	rootKey := filepath.Join(dir, "root.key")
	if err := MakeRootCertificate(config, rootCert, rootKey); err != nil {
		t.Fatal(err)
	}

	profile := matrix.CertECDSA384
	leafPath := CertPath(dir, profile)
	err := MakeLeafCertificate(profile, config, rootCert, rootKey, leafPath, KeyPath(dir, profile))
	if err != nil {
		t.Fatal(err)
	}
	leaf := readCert(t, leafPath)

	found := false
	for _, eku := range leaf.ExtKeyUsage {
		if eku == x509.ExtKeyUsageClientAuth {
			found = true
		}
	}
	if !found {
		t.Error("ForClient leaf missing the client-auth extended key usage")
	}
}
