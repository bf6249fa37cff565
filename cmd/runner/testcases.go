// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tls-conformance/matrix-runner/internal/certs"
	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/pqkeys"
	"github.com/tls-conformance/matrix-runner/internal/provider"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

type testMetadata struct {
	name   string
	abbrev string
	desc   string
}

type testcase interface {
	getMetadata() testMetadata
	setup(verbose bool) error
	run(client, server provider.Provider, flags matrix.Flags) (resultType, error)
	teardown(moveOutputs bool) error
}

// matrixTestcase runs every combination of its parameter space that the
// constraint filter does not deselect.
type matrixTestcase struct {
	meta    testMetadata
	timeout time.Duration

	// combinations enumerates the testcase's parameter space.
	combinations func() []combination

	// extraInputs, when set, generates inputs beyond the certificate
	// material, e.g. KEM key pairs.
	extraInputs func(logger *log.Logger) error

	logger  *log.Logger
	logFile *os.File
}

func (t *matrixTestcase) getMetadata() testMetadata {
	return t.meta
}

func (t *matrixTestcase) setup(verbose bool) error {
	for _, dir := range []string{testInputsDir, testOutputsDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	runLog, err := os.Create(filepath.Join(testOutputsDir, "run-log.txt"))
	if err != nil {
		return err
	}
	t.logFile = runLog
	if verbose {
		t.logger = log.New(io.MultiWriter(os.Stdout, runLog), "", 0)
	} else {
		t.logger = log.New(runLog, "", 0)
	}

	err = certs.GenerateAll(&certs.Config{
		Hostnames: []string{"localhost"},
		ValidFrom: time.Now(),
		ValidFor:  24 * time.Hour,
	}, testInputsDir)
	if err != nil {
		return err
	}

	if t.extraInputs != nil {
		return t.extraInputs(t.logger)
	}
	return nil
}

func (t *matrixTestcase) run(client, server provider.Provider, flags matrix.Flags) (resultType, error) {
	summaryFile, err := os.Create(filepath.Join(testOutputsDir,
		fmt.Sprintf("summary_%s_%s.txt", client.Name(), server.Name())))
	if err != nil {
		return resultError, err
	}
	defer summaryFile.Close()
	summary := bufio.NewWriter(summaryFile)
	defer summary.Flush()

	var ran, skipped, failed int
	for _, c := range t.combinations() {
		var res resultType
		if rule, bad := c.deselected(client, server, flags); bad {
			res = resultSkipped
			skipped++
			t.logger.Printf("%s: skipped (%s)", c, rule)
		} else {
			res, err = runCombination(client, server, c, t.timeout, t.logger)
			if err != nil {
				t.logger.Printf("%s: %s", c, err)
			}
			ran++
			if res != resultSuccess {
				failed++
			}
		}
		fmt.Fprintln(summary, summaryLine(client, server, t.meta.name, c, res))
	}

	t.logger.Printf("%d combinations: %d run, %d skipped, %d failed", ran+skipped, ran, skipped, failed)
	if failed > 0 {
		return resultFailure, nil
	}
	return resultSuccess, nil
}

func (t *matrixTestcase) teardown(moveOutputs bool) error {
	if t.logFile != nil {
		t.logFile.Close()
	}
	if moveOutputs {
		destDir := filepath.Join("generated", fmt.Sprintf("%s-out", t.meta.name))
		if err := os.RemoveAll(destDir); err != nil {
			return err
		}
		return os.Rename(testOutputsDir, destDir)
	}
	return nil
}

// handshakeCombinations crosses every protocol, cipher and server
// certificate profile.
func handshakeCombinations() []combination {
	return expandProtocolsCiphersCerts(allProtocols, matrix.Ciphers(), matrix.Certificates())
}

// clientAuthCombinations crosses protocols, server certificates and
// client-auth certificates, with the curve pinned on a subset so the
// signature-curve rules get exercise.
func clientAuthCombinations() []combination {
	var combos []combination
	for _, p := range allProtocols {
		for _, serverCert := range matrix.Certificates() {
			for _, clientCert := range matrix.Certificates() {
				combos = append(combos, combination{
					protocol:   versionPtr(p),
					cert:       serverCert,
					clientCert: clientCert,
				})
				for _, curve := range matrix.Curves() {
					combos = append(combos, combination{
						protocol:   versionPtr(p),
						cert:       serverCert,
						clientCert: clientCert,
						curve:      curvePtr(curve),
					})
				}
			}
		}
	}
	return combos
}

// pqCombinations pairs the post-quantum cipher preferences with the
// versions that can carry them.
func pqCombinations() []combination {
	var combos []combination
	for _, p := range []registry.Version{registry.VersionTLS10, registry.VersionTLS11, registry.VersionTLS12} {
		for _, c := range matrix.Ciphers() {
			if !c.PQ {
				continue
			}
			combos = append(combos, combination{
				protocol: versionPtr(p),
				cipher:   cipherPtr(c),
			})
		}
	}
	return combos
}

// pqInputs derives the KEM key pairs PQ combinations feed their peers and
// writes them next to the certificate material.
func pqInputs(logger *log.Logger) error {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(testInputsDir, "pq-seed"), seed, 0600); err != nil {
		return err
	}
	for _, c := range matrix.Ciphers() {
		if !c.PQ {
			continue
		}
		key, err := pqkeys.Generate(c, seed)
		if err != nil {
			return err
		}
		out := filepath.Join(testInputsDir, c.Name+".kem")
		if err := os.WriteFile(out, key.Marshal(), 0600); err != nil {
			return err
		}
		logger.Printf("KEM key pair for %s: %s (%s)", c.Name, out, key.Scheme.Name())
	}
	return nil
}

var testcases = map[string]testcase{
	"handshake": &matrixTestcase{
		meta: testMetadata{
			name:   "handshake",
			abbrev: "HS",
			desc:   "Basic handshake across protocols, ciphers and certificates.",
		},
		timeout:      30 * time.Second,
		combinations: handshakeCombinations,
	},
	"client-auth": &matrixTestcase{
		meta: testMetadata{
			name:   "client-auth",
			abbrev: "CA",
			desc:   "Mutual authentication across certificate and curve combinations.",
		},
		timeout:      30 * time.Second,
		combinations: clientAuthCombinations,
	},
	"pq-handshake": &matrixTestcase{
		meta: testMetadata{
			name:   "pq-handshake",
			abbrev: "PQ",
			desc:   "Handshake under post-quantum hybrid cipher preferences.",
		},
		timeout:      30 * time.Second,
		combinations: pqCombinations,
		extraInputs:  pqInputs,
	},
}

func testcaseNamesSorted() []string {
	names := make([]string, 0, len(testcases))
	for name := range testcases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
