// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"time"

	"github.com/tls-conformance/matrix-runner/internal/certs"
	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/provider"
	"github.com/tls-conformance/matrix-runner/internal/transcript"
)

// basePort is where peer servers start listening; each combination gets the
// next port so a lingering listener cannot poison the following handshake.
const basePort = 4433

var nextPort = basePort

// serverStartupGrace is how long the runner waits for a peer server to bind
// before pointing the client at it.
const serverStartupGrace = 200 * time.Millisecond

// runCombination executes one client/server handshake for c and validates
// the client's transcript against the expected negotiation.
func runCombination(client, server provider.Provider, c combination, timeout time.Duration, logger *log.Logger) (resultType, error) {
	serverCert := c.cert
	if serverCert == nil {
		serverCert = matrix.CertRSA2048
	}

	port := nextPort
	nextPort++

	serverArgs, err := server.ServerCommand(c.descriptor(server), provider.PeerOptions{
		Port:     port,
		CertPath: certs.CertPath(testInputsDir, serverCert),
		KeyPath:  certs.KeyPath(testInputsDir, serverCert),
	})
	if err != nil {
		return resultError, &errorWithFnName{err: err.Error(), fnName: "runCombination"}
	}
	clientOpts := provider.PeerOptions{Host: "localhost", Port: port}
	if c.clientCert != nil {
		clientOpts.CertPath = certs.CertPath(testInputsDir, c.clientCert)
		clientOpts.KeyPath = certs.KeyPath(testInputsDir, c.clientCert)
	}
	clientArgs, err := client.ClientCommand(c.descriptor(client), clientOpts)
	if err != nil {
		return resultError, &errorWithFnName{err: err.Error(), fnName: "runCombination"}
	}

	var serverOut, clientOut bytes.Buffer
	serverCmd := exec.Command(serverArgs[0], serverArgs[1:]...)
	serverCmd.Stdout = &serverOut
	serverCmd.Stderr = &serverOut
	if err := serverCmd.Start(); err != nil {
		return resultError, &errorWithFnName{err: fmt.Sprintf("server start: %s", err), fnName: "runCombination"}
	}
	defer serverCmd.Process.Kill()
	time.Sleep(serverStartupGrace)

	clientCmd := exec.Command(clientArgs[0], clientArgs[1:]...)
	clientCmd.Stdout = &clientOut
	clientCmd.Stderr = &clientOut
	if err := clientCmd.Start(); err != nil {
		return resultError, &errorWithFnName{err: fmt.Sprintf("client start: %s", err), fnName: "runCombination"}
	}
	if err := waitWithTimeout(clientCmd, timeout); err != nil {
		logger.Printf("%s: client: %s", c, err)
		logger.Print(clientOut.String())
		return resultFailure, nil
	}

	if err := validateClient(client, server, c, &clientOut); err != nil {
		logger.Printf("%s: %s", c, err)
		logger.Print(clientOut.String())
		logger.Print(serverOut.String())
		return resultFailure, nil
	}
	return resultSuccess, nil
}

// validateClient scrapes the client's output and checks the negotiated
// version. GnuTLS clients are not scraped; a clean exit is their pass.
func validateClient(client, server provider.Provider, c combination, out *bytes.Buffer) error {
	if c.protocol == nil {
		return nil
	}
	switch client.(type) {
	case provider.S2N:
		h, err := transcript.ParseS2N(bytes.NewReader(out.Bytes()))
		if err != nil {
			return err
		}
		_, peerIsS2N := server.(provider.S2N)
		return transcript.Validate(h, transcript.ExpectedS2NVersion(*c.protocol, peerIsS2N), "")
	case provider.OpenSSL:
		h, err := transcript.ParseOpenSSL(bytes.NewReader(out.Bytes()))
		if err != nil {
			return err
		}
		return transcript.Validate(h, transcript.ExpectedOpenSSLVersion(*c.protocol), "")
	}
	return nil
}
