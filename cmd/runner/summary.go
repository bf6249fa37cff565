// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tls-conformance/matrix-runner/internal/provider"
)

type result struct {
	Abbr   string `json:"abbr"`
	Name   string `json:"name"`
	Result string `json:"result"`
}

type testInfo struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type resultsSummary struct {
	Servers []string            `json:"servers"`
	Clients []string            `json:"clients"`
	Results [][]result          `json:"results"`
	Tests   map[string]testInfo `json:"tests"`
}

// worse orders result strings by severity; the testcase's reported result
// is the worst of its combinations.
func worse(a, b string) string {
	rank := map[string]int{
		resultSkipped.String(): 0,
		resultSuccess.String(): 1,
		resultFailure.String(): 2,
		resultError.String():   3,
	}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

// processTestResults folds the per-combination summary files under
// resultsDir into a single summary.json, one result per testcase per
// client/server pair.
func processTestResults(resultsDir string) error {
	if _, err := os.Stat(resultsDir); err != nil {
		return err
	}

	var summary resultsSummary
	summary.Servers = provider.Names()
	summary.Clients = provider.Names()
	testcaseNames := testcaseNamesSorted()

	for _, client := range summary.Clients {
		for _, server := range summary.Servers {
			perTest := make(map[string]string, len(testcaseNames))
			summaryFilePath := filepath.Join(resultsDir, fmt.Sprintf("summary_%s_%s.txt", client, server))
			summaryFile, err := os.Open(summaryFilePath)
			if err == nil {
				fscanner := bufio.NewScanner(summaryFile)
				for fscanner.Scan() {
					fields := strings.Split(fscanner.Text(), ",")
					if len(fields) != 5 {
						continue
					}
					name, res := fields[2], fields[4]
					if prev, ok := perTest[name]; ok {
						perTest[name] = worse(prev, res)
					} else {
						perTest[name] = res
					}
				}
				summaryFile.Close()
			}

			var pair []result
			for _, name := range testcaseNames {
				meta := testcases[name].getMetadata()
				res, ok := perTest[name]
				if !ok {
					res = resultSkipped.String()
				}
				pair = append(pair, result{Abbr: meta.abbrev, Name: meta.name, Result: res})
			}
			summary.Results = append(summary.Results, pair)
		}
	}

	summary.Tests = make(map[string]testInfo)
	for _, t := range testcases {
		meta := t.getMetadata()
		summary.Tests[meta.abbrev] = testInfo{Name: meta.name, Desc: meta.desc}
	}

	summaryJSON, _ := json.MarshalIndent(summary, "", "    ")
	return os.WriteFile(filepath.Join(resultsDir, "summary.json"), summaryJSON, 0644)
}
