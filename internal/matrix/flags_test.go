// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

package matrix

import "testing"

func TestFlagsFromEnv(t *testing.T) {
	t.Setenv(EnvNoPQ, "")
	t.Setenv(EnvFIPSMode, "")
	if flags := FlagsFromEnv(); flags.NoPQ || flags.FIPSMode {
		t.Errorf("unset environment must yield zero flags, got %+v", flags)
	}

	t.Setenv(EnvNoPQ, "1")
	t.Setenv(EnvFIPSMode, "true")
	flags := FlagsFromEnv()
	if !flags.NoPQ {
		t.Error("MATRIX_NO_PQ=1 must enable NoPQ")
	}
	if !flags.FIPSMode {
		t.Error("MATRIX_FIPS_MODE=true must enable FIPSMode")
	}

	t.Setenv(EnvNoPQ, "banana")
	if FlagsFromEnv().NoPQ {
		t.Error("unparseable values mean off")
	}
}
