// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/luxfi/atomicexport/pkg/constants"
	luxlog "github.com/luxfi/log"
)

type Lux struct {
	Log     luxlog.Logger
	baseDir string
}

func New() *Lux {
	return &Lux{}
}

func (app *Lux) Setup(baseDir string, log luxlog.Logger) {
	app.baseDir = baseDir
	app.Log = log
}

func (app *Lux) GetBaseDir() string {
	return app.baseDir
}

func (app *Lux) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetConfigPath is the default location of the config file.
func (app *Lux) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

// GetNetworkTablePath is where an operator-supplied network table is looked
// up when none is configured.
func (app *Lux) GetNetworkTablePath() string {
	return filepath.Join(app.baseDir, constants.NetworkTableFileName)
}
