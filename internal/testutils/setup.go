// Copyright (C) 2022, Lux Partners Limited, All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/luxfi/atomicexport/pkg/application"
	"github.com/luxfi/atomicexport/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return require.New(t)
}

func SetupTestInTempDir(t *testing.T) *application.Lux {
	testDir := t.TempDir()

	app := application.New()
	app.Setup(testDir, luxlog.NewNoOpLogger())
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	return app
}
