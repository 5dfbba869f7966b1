// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stratalabs/sequencer-cli/cmd/nodecmd"
	"github.com/stratalabs/sequencer-cli/pkg/application"
	"github.com/stratalabs/sequencer-cli/pkg/config"
	"github.com/stratalabs/sequencer-cli/pkg/constants"
	"github.com/stratalabs/sequencer-cli/pkg/prompts"
	"github.com/stratalabs/sequencer-cli/pkg/ux"
)

var (
	app        *application.Strata
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.1"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "strata",
		Long: `Strata CLI - Operator toolchain for provisioning sequencer nodes.

The Strata CLI prepares a host for running an alpha-testnet sequencer
node: it installs the container runtime and supporting tools, collects
the operator configuration, renders the deployment files and launches
and monitors the node container.

COMMAND OVERVIEW:

  node install   Install dependencies, configure and start the node
  node logs      Tail the sequencer container logs
  node status    Query the node's proven height and sync proof
  node menu      Interactive menu covering all of the above

QUICK START:

  # Provision and start a sequencer node in the current directory
  sudo strata node install

  # Watch it sync
  strata node status

For detailed command help, use: strata <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.strata-cli/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	rootCmd.AddCommand(nodecmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log level based on flags (must be done after flags are parsed)
	if cmd.Flags().Changed("debug") {
		logFactory.SetLogLevel("strata", luxlog.Level(-4))
		logFactory.SetDisplayLevel("strata", luxlog.Level(-4))
	} else if cmd.Flags().Changed("verbose") {
		logFactory.SetLogLevel("strata", luxlog.Level(0))
		logFactory.SetDisplayLevel("strata", luxlog.Level(0))
	} else if cmd.Flags().Changed("quiet") {
		logFactory.SetLogLevel("strata", luxlog.Level(8))
		logFactory.SetDisplayLevel("strata", luxlog.Level(8))
	} else if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err == nil {
			logFactory.SetLogLevel("strata", level)
			logFactory.SetDisplayLevel("strata", level)
		}
	}

	cf := config.New()

	// If --non-interactive flag is set, propagate to env so IsInteractive() sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	// Interactive by default on TTY, non-interactive when:
	// STRATA_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, log, cf, prompter)

	initConfig()

	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err = os.MkdirAll(baseDir, 0o750); err != nil {
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

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/stratalabs/sequencer-cli/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make("strata")
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		strataDir := filepath.Join(home, constants.BaseDirName)
		viper.AddConfigPath(strataDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
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
