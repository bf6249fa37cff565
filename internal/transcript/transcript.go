// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// Package transcript turns peer process output into a handshake record and
// checks it against what the requested parameters should have negotiated.
package transcript

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// Handshake is what a peer reported after its handshake completed, in the
// peer's own vocabulary (s2n prints version numbers, openssl prints names).
type Handshake struct {
	Version string
	Cipher  string
}

// ParseS2N scans s2nd/s2nc output.
func ParseS2N(r io.Reader) (Handshake, error) {
	var h Handshake
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "Actual protocol version: "); ok {
			h.Version = strings.TrimSpace(v)
		}
		if c, ok := strings.CutPrefix(line, "Cipher negotiated: "); ok {
			h.Cipher = strings.TrimSpace(c)
		}
	}
	if err := scanner.Err(); err != nil {
		return h, err
	}
	if h.Version == "" {
		return h, errors.New("no protocol version in s2n output")
	}
	return h, nil
}

// ParseOpenSSL scans s_client/s_server output.
func ParseOpenSSL(r io.Reader) (Handshake, error) {
	var h Handshake
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), ":", 2)
		if len(fields) != 2 {
			continue
		}
		switch strings.TrimSpace(fields[0]) {
		case "Protocol":
			h.Version = strings.TrimSpace(fields[1])
		case "Cipher":
			h.Cipher = strings.TrimSpace(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return h, err
	}
	if h.Version == "" {
		return h, errors.New("no protocol version in openssl output")
	}
	return h, nil
}

// ExpectedS2NVersion returns the version number s2nd/s2nc should print for
// a handshake at protocol. When s2n talks to itself below TLS 1.3 the pair
// always settles on TLS 1.2, even if a lower version was requested.
func ExpectedS2NVersion(protocol registry.Version, peerIsS2N bool) string {
	if peerIsS2N && protocol != registry.VersionTLS13 {
		return strconv.Itoa(int(registry.VersionTLS12))
	}
	return strconv.Itoa(int(protocol))
}

// ExpectedOpenSSLVersion returns the protocol name openssl prints. Note
// openssl reports TLS 1.0 as "TLSv1".
func ExpectedOpenSSLVersion(protocol registry.Version) string {
	switch protocol {
	case registry.VersionTLS13:
		return "TLSv1.3"
	case registry.VersionTLS12:
		return "TLSv1.2"
	case registry.VersionTLS11:
		return "TLSv1.1"
	case registry.VersionTLS10:
		return "TLSv1"
	case registry.VersionSSLv3:
		return "SSLv3"
	}
	return ""
}

// Validate checks a handshake record against the expected negotiation.
// Empty expectations are unconstrained.
func Validate(h Handshake, expectedVersion, expectedCipher string) error {
	if expectedVersion != "" && h.Version != expectedVersion {
		return errors.New("negotiated " + h.Version + ", expected " + expectedVersion)
	}
	if expectedCipher != "" && h.Cipher != expectedCipher {
		return errors.New("negotiated cipher " + h.Cipher + ", expected " + expectedCipher)
	}
	return nil
}
