// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
	"github.com/tls-conformance/matrix-runner/internal/provider"
)

const usage = `Usage:

    $ runner [-help] {-client STRING} {-server STRING} {-testcase STRING|-alltestcases} [-verbose]

    $ runner -client=s2n -server=gnutls -testcase=handshake runs the handshake matrix with s2n as client and gnutls as server
    $ runner -client=s2n -server=openssl -alltestcases runs every testcase with s2n as client and openssl as server

    Feature flags are read from the environment once at startup:
    MATRIX_NO_PQ excludes post-quantum cipher preferences, MATRIX_FIPS_MODE
    restricts the matrix to FIPS-validated primitives.
`

var testInputsDir = filepath.Join("generated", "test-inputs")
var testOutputsDir = filepath.Join("generated", "test-outputs")

func main() {
	log.SetFlags(0)
	var (
		clientName    = flag.String("client", "", "")
		serverName    = flag.String("server", "", "")
		testcaseName  = flag.String("testcase", "", "")
		runAllTests   = flag.Bool("alltestcases", false, "")
		listProviders = flag.Bool("list-providers", false, "")
		listTestcases = flag.Bool("list-testcases", false, "")
		resultsDir    = flag.String("process-results", "", "")
		verbose       = flag.Bool("verbose", false, "")
		help          = flag.Bool("help", false, "")
	)
	flag.Parse()

	if *help {
		fmt.Print(usage)
		return
	}
	if *listProviders {
		jsonOut, _ := json.Marshal(provider.Names())
		fmt.Print(string(jsonOut))
		return
	}
	if *listTestcases {
		jsonOut, _ := json.Marshal(testcaseNamesSorted())
		fmt.Print(string(jsonOut))
		return
	}
	if *resultsDir != "" {
		if err := processTestResults(*resultsDir); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *clientName == "" || *serverName == "" || (!*runAllTests && *testcaseName == "") {
		fmt.Print(usage)
		return
	}

	client, found := provider.Lookup(*clientName)
	if !found {
		log.Fatalf("%s not found.", *clientName)
	}
	server, found := provider.Lookup(*serverName)
	if !found {
		log.Fatalf("%s not found.", *serverName)
	}

	featureFlags := matrix.FlagsFromEnv()

	var names []string
	if *runAllTests {
		names = testcaseNamesSorted()
	} else {
		if _, ok := testcases[*testcaseName]; !ok {
			log.Fatalf("Testcase %s not found.", *testcaseName)
		}
		names = []string{*testcaseName}
	}

	anyFailed := false
	for _, name := range names {
		t := testcases[name]
		err := t.setup(*verbose)
		if err != nil {
			log.Fatalf("Error generating test inputs: %s", err)
		}
		result, err := t.run(client, server, featureFlags)
		if err != nil {
			log.Println(err)
		}
		log.Printf("client=%s,server=%s,testcase=%s,%s", client.Name(), server.Name(), name, result)
		if result == resultFailure || result == resultError {
			anyFailed = true
		}
		err = t.teardown(*runAllTests)
		if err != nil {
			log.Fatal(err)
		}
	}
	if anyFailed {
		os.Exit(1)
	}
}
