// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/luxfi/atomicexport/cmd/atomiccmd"
	"github.com/luxfi/atomicexport/cmd/flags"
	"github.com/luxfi/atomicexport/pkg/application"
	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/ux"
	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	app *application.Lux

	logLevel string
	Version  = "0.1.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "lux-atomic",
		Long: `lux-atomic builds unsigned atomic export transactions that move funds from
the C-Chain to the P-Chain, and derives the X/C/P addresses of a public key.

The network (ID, bech32 prefix, asset and chain IDs) is resolved from the
node at --endpoint. Nothing is signed or issued.

QUICK START:

  # Addresses of a key on the node's network
  lux-atomic address --public-key 0x02...

  # Unsigned export of 1 LUX
  lux-atomic export --amount 1000000000 --from 0x8db9... --public-key 0x02...`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lux/atomicexport.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevel, "ERROR", "log level for the application")
	flags.AddNodeFlags(rootCmd.PersistentFlags())
	cobra.CheckErr(flags.BindNodeFlags(viper.GetViper(), rootCmd.PersistentFlags()))

	rootCmd.AddCommand(atomiccmd.NewExportCmd(app))
	rootCmd.AddCommand(atomiccmd.NewAddressCmd(app))

	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	app.Setup(baseDir, log)

	return initConfig()
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, perms.ReadWriteExecute); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(-6) // Info level for file logging

	config.DisplayLevel, _ = luxlog.ToLevel("WARN")
	if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid log level %q", constants.ErrInvalidArgument, logLevel)
		}
		config.DisplayLevel = level
	}

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make("lux")
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to the log file
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(app.GetBaseDir())
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is normal, most users don't have one
		return nil
	}
	app.Log.Debug("using config file", zap.String("config-file", viper.ConfigFileUsed()))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
