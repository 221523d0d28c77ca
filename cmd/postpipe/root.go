package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/askiada/go-postpipeline/internal/config"
)

// app carries what every command shares.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "postpipe",
		Short:         "Post-processing pipeline for time-stepped results",
		Long:          "postpipe loads result set files into a post-processing pipeline, selects steps and reports how the pipeline is wired.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .postpipe.yaml)")
	flags.String("mode", "", "pipeline mode: Serial or Parallel")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.Int("concurrency", 0, "number of steps exported at the same time")
	flags.String("dot", "", "write the pipeline wiring to this DOT file")

	_ = a.v.BindPFlag("mode", flags.Lookup("mode"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("load.concurrency", flags.Lookup("concurrency"))
	_ = a.v.BindPFlag("drawer.output", flags.Lookup("dot"))

	rootCmd.AddCommand(newInspectCmd(a), newWatchCmd(a))

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)

		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		a.v.SetConfigName(".postpipe")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}

		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}
