// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// Package registry holds the immutable cipher-suite and protocol-version
// tables shared by the constraint filter and the peer command builders.
// Everything here is fixed at load time; there are no mutation operations.
package registry

// CipherSuite describes one negotiable suite as the harness addresses it:
// by its OpenSSL name, with the GnuTLS priority string that selects the
// same suite on a GnuTLS peer.
type CipherSuite struct {
	// Name is the OpenSSL cipher suite name, unique within Suites().
	Name string

	// GnuTLSPriority selects exactly this suite on a GnuTLS peer.
	GnuTLSPriority string

	// MinVersion is the lowest protocol version that can negotiate the suite.
	MinVersion Version

	// OpenSSL110Compatible reports whether OpenSSL 1.1.0 and later still
	// ship the suite. RC4 and 3DES suites were removed from its defaults.
	OpenSSL110Compatible bool
}

// Selecting a single suite in GnuTLS means removing everything and then
// re-adding each algorithm (kx, enc, mac) of the wanted suite. See
// https://www.gnutls.org/manual/html_node/Priority-Strings.html
const gnutlsPriorityPrefix = "NONE:+COMP-NULL:+CTYPE-ALL:+CURVE-ALL"

func gnutlsPriority(kx, enc, mac string) string {
	return gnutlsPriorityPrefix + ":+" + kx + ":+" + enc + ":+" + mac
}

// suites is insertion-ordered; iteration order feeds upstream test
// generation and must stay stable.
var suites = []CipherSuite{
	{"RC4-MD5", gnutlsPriority("RSA", "ARCFOUR-128", "MD5"), VersionSSLv3, false},
	{"RC4-SHA", gnutlsPriority("RSA", "ARCFOUR-128", "SHA1"), VersionSSLv3, false},
	{"DES-CBC3-SHA", gnutlsPriority("RSA", "3DES-CBC", "SHA1"), VersionSSLv3, false},
	{"EDH-RSA-DES-CBC3-SHA", gnutlsPriority("DHE-RSA", "3DES-CBC", "SHA1"), VersionSSLv3, false},
	{"AES128-SHA", gnutlsPriority("RSA", "AES-128-CBC", "SHA1"), VersionTLS10, true},
	{"DHE-RSA-AES128-SHA", gnutlsPriority("DHE-RSA", "AES-128-CBC", "SHA1"), VersionTLS10, true},
	{"AES256-SHA", gnutlsPriority("RSA", "AES-256-CBC", "SHA1"), VersionTLS10, true},
	{"DHE-RSA-AES256-SHA", gnutlsPriority("DHE-RSA", "AES-256-CBC", "SHA1"), VersionTLS10, true},
	{"AES128-SHA256", gnutlsPriority("RSA", "AES-128-CBC", "SHA256"), VersionTLS12, true},
	{"AES256-SHA256", gnutlsPriority("RSA", "AES-256-CBC", "SHA256"), VersionTLS12, true},
	{"DHE-RSA-AES128-SHA256", gnutlsPriority("DHE-RSA", "AES-128-CBC", "SHA256"), VersionTLS12, true},
	{"DHE-RSA-AES256-SHA256", gnutlsPriority("DHE-RSA", "AES-256-CBC", "SHA256"), VersionTLS12, true},
	{"AES128-GCM-SHA256", gnutlsPriority("RSA", "AES-128-GCM", "AEAD"), VersionTLS12, true},
	{"AES256-GCM-SHA384", gnutlsPriority("RSA", "AES-256-GCM", "AEAD"), VersionTLS12, true},
	{"DHE-RSA-AES128-GCM-SHA256", gnutlsPriority("DHE-RSA", "AES-128-GCM", "AEAD"), VersionTLS12, true},
	{"ECDHE-RSA-DES-CBC3-SHA", gnutlsPriority("ECDHE-RSA", "3DES-CBC", "SHA1"), VersionTLS10, false},
	{"ECDHE-RSA-AES128-SHA", gnutlsPriority("ECDHE-RSA", "AES-128-CBC", "SHA1"), VersionTLS10, true},
	{"ECDHE-RSA-AES256-SHA", gnutlsPriority("ECDHE-RSA", "AES-256-CBC", "SHA1"), VersionTLS10, true},
	{"ECDHE-RSA-AES128-SHA256", gnutlsPriority("ECDHE-RSA", "AES-128-CBC", "SHA256"), VersionTLS12, true},
	{"ECDHE-RSA-AES256-SHA384", gnutlsPriority("ECDHE-RSA", "AES-256-CBC", "SHA384"), VersionTLS12, true},
	{"ECDHE-RSA-AES128-GCM-SHA256", gnutlsPriority("ECDHE-RSA", "AES-128-GCM", "AEAD"), VersionTLS12, true},
	{"ECDHE-RSA-AES256-GCM-SHA384", gnutlsPriority("ECDHE-RSA", "AES-256-GCM", "AEAD"), VersionTLS12, true},
}

var suitesByName map[string]CipherSuite

func init() {
	suitesByName = make(map[string]CipherSuite, len(suites))
	for _, s := range suites {
		suitesByName[s.Name] = s
	}
}

// Suites returns the full suite table in insertion order. Callers must not
// modify the returned slice.
func Suites() []CipherSuite {
	return suites
}

// LookupSuite returns the suite registered under name.
func LookupSuite(name string) (CipherSuite, bool) {
	s, ok := suitesByName[name]
	return s, ok
}
