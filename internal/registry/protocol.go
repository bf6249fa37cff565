// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
)

// Version identifies a protocol version using the numbering peers print on
// their command line (SSLv3 is 30, TLS1.2 is 33). The values form a total
// order; the filter compares them directly.
type Version int

const (
	VersionSSLv3 Version = 30
	VersionTLS10 Version = 31
	VersionTLS11 Version = 32
	VersionTLS12 Version = 33
	VersionTLS13 Version = 34
)

// ErrUnknownVersion is returned by registry lookups for versions with no
// registered mapping. Callers are expected to check applicability before
// looking up: TLS 1.3 is deliberately absent from the GnuTLS selector map.
var ErrUnknownVersion = errors.New("unknown protocol version")

var versionNames = map[Version]string{
	VersionSSLv3: "SSLv3",
	VersionTLS10: "TLSv1.0",
	VersionTLS11: "TLSv1.1",
	VersionTLS12: "TLSv1.2",
}

// GnuTLS selects protocol versions through priority-string tokens rather
// than flags. TLS 1.3 has no entry: peers negotiate it through the default
// priority set, so forcing it this way is never valid.
var versionGnuTLSSelectors = map[Version]string{
	VersionSSLv3: "VERS-SSL3.0",
	VersionTLS10: "VERS-TLS1.0",
	VersionTLS11: "VERS-TLS1.1",
	VersionTLS12: "VERS-TLS1.2",
}

// DisplayName returns the human-readable name registered for v.
func DisplayName(v Version) (string, error) {
	name, ok := versionNames[v]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
	return name, nil
}

// GnuTLSVersionSelector returns the priority-string token that forces a
// GnuTLS peer to negotiate exactly v.
func GnuTLSVersionSelector(v Version) (string, error) {
	sel, ok := versionGnuTLSSelectors[v]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
	return sel, nil
}

// String is a logging helper; unlike DisplayName it covers every version the
// harness knows about, so log lines never fail on TLS 1.3.
func (v Version) String() string {
	if v == VersionTLS13 {
		return "TLSv1.3"
	}
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("TLS(%d)", int(v))
}
