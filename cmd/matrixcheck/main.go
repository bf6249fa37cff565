// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/provider"
	"github.com/tls-conformance/matrix-runner/internal/registry"
)

const usage = `Usage:

    $ matrixcheck [-help] [-protocol NAME] [-provider NAME] [-cipher NAME] [-curve NAME] [-cert NAME] [-client-cert NAME]

    Judges a single parameter combination the way the runner would and
    prints the verdict. Unset dimensions are unconstrained.

    $ matrixcheck -protocol TLSv1.3 -cipher AES128-GCM-SHA256
    invalid (legacy-cipher-under-tls13)
`

var protocolNames = map[string]registry.Version{
	"SSLv3":   registry.VersionSSLv3,
	"TLSv1.0": registry.VersionTLS10,
	"TLSv1.1": registry.VersionTLS11,
	"TLSv1.2": registry.VersionTLS12,
	"TLSv1.3": registry.VersionTLS13,
}

func main() {
	log.SetFlags(0)
	var (
		protocolName   = flag.String("protocol", "", "")
		providerName   = flag.String("provider", "", "")
		cipherName     = flag.String("cipher", "", "")
		curveName      = flag.String("curve", "", "")
		certName       = flag.String("cert", "", "")
		clientCertName = flag.String("client-cert", "", "")
		help           = flag.Bool("help", false, "")
	)
	flag.Parse()
	if *help {
		fmt.Print(usage)
		return
	}

	var tc matrix.TestCase

	if *protocolName != "" {
		v, ok := protocolNames[*protocolName]
		if !ok {
			log.Fatalf("unknown protocol %s", *protocolName)
		}
		tc.Protocol = &v
	}
	if *providerName != "" {
		p, ok := provider.Lookup(*providerName)
		if !ok {
			log.Fatalf("unknown provider %s", *providerName)
		}
		tc.Provider = p
	}
	if *cipherName != "" {
		c, ok := matrix.LookupCipher(*cipherName)
		if !ok {
			log.Fatalf("unknown cipher %s", *cipherName)
		}
		tc.Cipher = &c
	}
	if *curveName != "" {
		var found bool
		for _, c := range matrix.Curves() {
			if c.Name == *curveName {
				curve := c
				tc.Curve = &curve
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("unknown curve %s", *curveName)
		}
	}
	if *certName != "" {
		c, ok := matrix.LookupCertificate(*certName)
		if !ok {
			log.Fatalf("unknown certificate profile %s", *certName)
		}
		tc.Certificate = c
	}
	if *clientCertName != "" {
		c, ok := matrix.LookupCertificate(*clientCertName)
		if !ok {
			log.Fatalf("unknown certificate profile %s", *clientCertName)
		}
		tc.ClientCertificate = c
	}

	if rule, bad := matrix.FailingRule(tc, matrix.FlagsFromEnv()); bad {
		fmt.Printf("invalid (%s)\n", rule)
	} else {
		fmt.Println("valid")
	}
}
