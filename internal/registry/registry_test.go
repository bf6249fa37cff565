// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"strings"
	"testing"
)

func TestSuiteNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Suites() {
		if seen[s.Name] {
			t.Errorf("duplicate suite name %s", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestSuiteMinVersionsAreRegistered(t *testing.T) {
	for _, s := range Suites() {
		if _, err := DisplayName(s.MinVersion); err != nil {
			t.Errorf("%s: min version %d has no display name", s.Name, s.MinVersion)
		}
	}
}

func TestSuitePriorityStringConstruction(t *testing.T) {
	for _, s := range Suites() {
		if !strings.HasPrefix(s.GnuTLSPriority, "NONE:+COMP-NULL:+CTYPE-ALL:+CURVE-ALL:+") {
			t.Errorf("%s: priority string missing the disable-all prefix: %s", s.Name, s.GnuTLSPriority)
		}
	}

	s, ok := LookupSuite("ECDHE-RSA-AES128-GCM-SHA256")
	if !ok {
		t.Fatal("ECDHE-RSA-AES128-GCM-SHA256 not registered")
	}
	want := "NONE:+COMP-NULL:+CTYPE-ALL:+CURVE-ALL:+ECDHE-RSA:+AES-128-GCM:+AEAD"
	if s.GnuTLSPriority != want {
		t.Errorf("got %s, want %s", s.GnuTLSPriority, want)
	}
	if s.MinVersion != VersionTLS12 {
		t.Errorf("got min version %d, want %d", s.MinVersion, VersionTLS12)
	}
}

func TestLookupSuiteUnknown(t *testing.T) {
	if _, ok := LookupSuite("NULL-MD5"); ok {
		t.Error("unregistered suite must not resolve")
	}
}

func TestDisplayName(t *testing.T) {
	name, err := DisplayName(VersionTLS12)
	if err != nil {
		t.Fatal(err)
	}
	if name != "TLSv1.2" {
		t.Errorf("got %s, want TLSv1.2", name)
	}

	if _, err := DisplayName(VersionTLS13); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("TLS 1.3 display lookup: got %v, want ErrUnknownVersion", err)
	}
	if _, err := DisplayName(Version(99)); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("bogus version lookup: got %v, want ErrUnknownVersion", err)
	}
}

func TestGnuTLSVersionSelector(t *testing.T) {
	sel, err := GnuTLSVersionSelector(VersionSSLv3)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sel, "VERS-SSL3.0") {
		t.Errorf("SSLv3 selector %s does not contain VERS-SSL3.0", sel)
	}

	// TLS 1.3 is deliberately unmapped.
	if _, err := GnuTLSVersionSelector(VersionTLS13); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("TLS 1.3 selector lookup: got %v, want ErrUnknownVersion", err)
	}
}

func TestVersionOrdering(t *testing.T) {
	ordered := []Version{VersionSSLv3, VersionTLS10, VersionTLS11, VersionTLS12, VersionTLS13}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%s is not below %s", ordered[i-1], ordered[i])
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := VersionTLS13.String(); got != "TLSv1.3" {
		t.Errorf("got %s, want TLSv1.3", got)
	}
	if got := VersionTLS10.String(); got != "TLSv1.0" {
		t.Errorf("got %s, want TLSv1.0", got)
	}
	if got := Version(7).String(); got != "TLS(7)" {
		t.Errorf("got %s, want TLS(7)", got)
	}
}
