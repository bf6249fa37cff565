// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"strconv"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

// PeerOptions carries the per-invocation inputs a command line needs beyond
// the descriptor itself. CertPath/KeyPath are the server certificate for
// server commands and the client-auth certificate for client commands.
type PeerOptions struct {
	Host     string
	Port     int
	CertPath string
	KeyPath  string
}

// openssl selects protocol versions through dedicated flags rather than the
// registry's GnuTLS tokens.
var opensslVersionFlags = map[registry.Version]string{
	registry.VersionSSLv3: "-ssl3",
	registry.VersionTLS10: "-tls1",
	registry.VersionTLS11: "-tls1_1",
	registry.VersionTLS12: "-tls1_2",
	registry.VersionTLS13: "-tls1_3",
}

// gnutlsPriority builds the full priority string for tc: the suite's
// registry expression plus, below TLS 1.3, the version-selector token.
// TLS 1.3 is never looked up in the selector map; it negotiates through the
// default priority set.
func gnutlsPriority(tc matrix.TestCase) (string, error) {
	priority := "NORMAL"
	if tc.Cipher != nil {
		s, ok := registry.LookupSuite(tc.Cipher.Name)
		if !ok {
			return "", fmt.Errorf("cipher %s has no gnutls priority string", tc.Cipher.Name)
		}
		priority = s.GnuTLSPriority
	}
	if tc.Protocol != nil && *tc.Protocol != registry.VersionTLS13 {
		sel, err := registry.GnuTLSVersionSelector(*tc.Protocol)
		if err != nil {
			return "", err
		}
		priority += ":+" + sel
	}
	return priority, nil
}

func (g GnuTLS) ServerCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	priority, err := gnutlsPriority(tc)
	if err != nil {
		return nil, err
	}
	args := []string{
		"gnutls-serv",
		"--priority", priority,
		"--x509certfile", opts.CertPath,
		"--x509keyfile", opts.KeyPath,
		"-p", strconv.Itoa(opts.Port),
	}
	if tc.ClientCertificate != nil {
		args = append(args, "--require-client-cert")
	}
	return args, nil
}

func (g GnuTLS) ClientCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	priority, err := gnutlsPriority(tc)
	if err != nil {
		return nil, err
	}
	args := []string{
		"gnutls-cli",
		"--priority", priority,
		"--insecure",
	}
	if tc.ClientCertificate != nil {
		args = append(args, "--x509certfile", opts.CertPath, "--x509keyfile", opts.KeyPath)
	}
	args = append(args, "-p", strconv.Itoa(opts.Port), opts.Host)
	return args, nil
}

// opensslCipherArgs returns the cipher selection flags for tc. TLS 1.3
// suites use -ciphersuites; everything else goes through -cipher.
func opensslCipherArgs(tc matrix.TestCase) []string {
	if tc.Cipher == nil {
		return nil
	}
	if tc.Cipher.MinVersion == registry.VersionTLS13 {
		return []string{"-ciphersuites", tc.Cipher.Name}
	}
	return []string{"-cipher", tc.Cipher.Name}
}

func opensslCommonArgs(tc matrix.TestCase) []string {
	var args []string
	args = append(args, opensslCipherArgs(tc)...)
	if tc.Protocol != nil {
		if flag, ok := opensslVersionFlags[*tc.Protocol]; ok {
			args = append(args, flag)
		}
	}
	if tc.Curve != nil {
		args = append(args, "-curves", tc.Curve.Name)
	}
	return args
}

func (o OpenSSL) ServerCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	args := []string{
		"openssl", "s_server",
		"-accept", strconv.Itoa(opts.Port),
		"-cert", opts.CertPath,
		"-key", opts.KeyPath,
	}
	if tc.ClientCertificate != nil {
		args = append(args, "-Verify", "1")
	}
	return append(args, opensslCommonArgs(tc)...), nil
}

func (o OpenSSL) ClientCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	args := []string{
		"openssl", "s_client",
		"-connect", fmt.Sprintf("%s:%d", opts.Host, opts.Port),
	}
	if tc.ClientCertificate != nil {
		args = append(args, "-cert", opts.CertPath, "-key", opts.KeyPath)
	}
	return append(args, opensslCommonArgs(tc)...), nil
}

func s2nCommonArgs(tc matrix.TestCase) []string {
	var args []string
	if tc.Cipher != nil {
		args = append(args, "--ciphers", tc.Cipher.Name)
	}
	if tc.Curve != nil {
		args = append(args, "--curves", tc.Curve.Name)
	}
	return args
}

func (s S2N) ServerCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	args := []string{
		"s2nd",
		"--cert", opts.CertPath,
		"--key", opts.KeyPath,
	}
	if tc.ClientCertificate != nil {
		args = append(args, "--require-client-auth")
	}
	args = append(args, s2nCommonArgs(tc)...)
	return append(args, "localhost", strconv.Itoa(opts.Port)), nil
}

func (s S2N) ClientCommand(tc matrix.TestCase, opts PeerOptions) ([]string, error) {
	args := []string{"s2nc", "--insecure"}
	if tc.ClientCertificate != nil {
		args = append(args, "--cert", opts.CertPath, "--key", opts.KeyPath)
	}
	args = append(args, s2nCommonArgs(tc)...)
	return append(args, opts.Host, strconv.Itoa(opts.Port)), nil
}
