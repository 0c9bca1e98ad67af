package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "sara-monitor",
	Short:        "Monitoree status classification and report reminder service",
	SilenceUsage: true,
}

func execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithField("prefix", "cmd").WithError(err).Error("command execution failed")
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	rootCmd.AddCommand(apiCmd, consumeCmd, sweepCmd, allCmd)
}
