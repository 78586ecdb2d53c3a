// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require := require.New(t)

	require.Equal("0", ConvertToStringWithThousandSeparator(0))
	require.Equal("999", ConvertToStringWithThousandSeparator(999))
	require.Equal("1_000_001", ConvertToStringWithThousandSeparator(1_000_001))
}

func TestUserLogOutput(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	ul := &UserLog{log: luxlog.NewNoOpLogger(), writer: &buf}

	ul.PrintToUser("fee: %d", 7)
	ul.GreenCheckmarkToUser("done")
	ul.PrintTable([]string{"Chain", "Address"}, [][]string{{"P", "P-local1abc"}})

	out := buf.String()
	require.Contains(out, "fee: 7\n")
	require.Contains(out, "✓ done\n")
	require.Contains(out, "P-local1abc")
}

func TestUserLogFailureAndSeparator(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	ul := &UserLog{log: luxlog.NewNoOpLogger(), writer: &buf}

	ul.RedXToUser("failed to connect to %s", "http://localhost:9650")
	ul.PrintLineSeparator()
	ul.PrintLineSeparator("---")

	require.Equal(
		"✗ failed to connect to http://localhost:9650\n"+
			"==========================================\n"+
			"---\n",
		buf.String(),
	)
}
