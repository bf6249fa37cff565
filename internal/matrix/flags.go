// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import (
	"os"
	"strconv"
)

// Environment variables read once at startup. They are never consulted
// again during a run.
const (
	EnvNoPQ     = "MATRIX_NO_PQ"
	EnvFIPSMode = "MATRIX_FIPS_MODE"
)

// Flags are the process-wide feature switches the filter consults. They are
// plain values: whoever builds them owns when the environment is read.
type Flags struct {
	// NoPQ excludes post-quantum cipher preferences from the matrix.
	NoPQ bool

	// FIPSMode restricts the matrix to FIPS-validated primitives, which
	// also excludes post-quantum preferences.
	FIPSMode bool
}

// FlagsFromEnv reads the feature switches from the environment. Unset or
// unparseable values mean off.
func FlagsFromEnv() Flags {
	return Flags{
		NoPQ:     boolEnv(EnvNoPQ),
		FIPSMode: boolEnv(EnvFIPSMode),
	}
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
