// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import "testing"

func TestCertCipherCompatibility(t *testing.T) {
	tests := []struct {
		cert   *Cert
		cipher string
		want   bool
	}{
		{CertRSA2048, "AES128-GCM-SHA256", true},
		{CertRSA2048, "ECDHE-RSA-AES128-SHA", true},
		{CertRSA2048, "ECDHE-ECDSA-AES128-GCM-SHA256", false},
		{CertECDSA256, "ECDHE-ECDSA-AES128-GCM-SHA256", true},
		{CertECDSA256, "ECDHE-RSA-AES128-SHA", false},
		{CertECDSA256, "AES128-SHA", false},
		// PSS keys sign only: no RSA key exchange.
		{CertRSAPSS2048, "AES128-GCM-SHA256", false},
		{CertRSAPSS2048, "ECDHE-RSA-AES128-GCM-SHA256", true},
		{CertRSAPSS2048, "DHE-RSA-AES128-SHA", true},
		{CertRSAPSS2048, "ECDHE-ECDSA-AES128-GCM-SHA256", false},
	}
	for _, tt := range tests {
		c, ok := LookupCipher(tt.cipher)
		if !ok {
			// Not all test ciphers are in the catalog; build one.
			c = Cipher{Name: tt.cipher}
		}
		if got := tt.cert.CompatibleWithCipher(c); got != tt.want {
			t.Errorf("%s with %s: got %v, want %v", tt.cert.Name, tt.cipher, got, tt.want)
		}
	}
}

func TestTLS13SuitesAcceptAnyCertificate(t *testing.T) {
	for _, cert := range Certificates() {
		if !cert.CompatibleWithCipher(CipherAES128GCMSHA256) {
			t.Errorf("%s must be usable with TLS 1.3 suites", cert.Name)
		}
	}
}

func TestCertCurveCompatibility(t *testing.T) {
	if !CertRSA2048.CompatibleWithCurve(CurveP384) {
		t.Error("RSA certificates are not curve-bound")
	}
	if !CertECDSA384.CompatibleWithCurve(CurveP384) {
		t.Error("P-384 certificate must accept P-384")
	}
	if CertECDSA384.CompatibleWithCurve(CurveP256) {
		t.Error("P-384 certificate must reject P-256")
	}
}

func TestCipherCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Ciphers() {
		if seen[c.Name] {
			t.Errorf("duplicate cipher %s", c.Name)
		}
		seen[c.Name] = true
	}

	c, ok := LookupCipher("TLS_AES_128_GCM_SHA256")
	if !ok {
		t.Fatal("TLS 1.3 suite missing from catalog")
	}
	if c.PQ {
		t.Error("TLS 1.3 suites are not post-quantum")
	}

	pqCount := 0
	for _, c := range Ciphers() {
		if c.PQ {
			pqCount++
		}
	}
	if pqCount == 0 {
		t.Error("catalog must include post-quantum preferences")
	}
}
