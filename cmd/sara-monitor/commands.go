package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the http query api",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		evaluator, err := a.evaluator(cmd.Context())
		if err != nil {
			return err
		}
		return a.server(evaluator).Run(cmd.Context(), a.addr())
	}),
}

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Ingest reports from the reports topic",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		return a.consumer().Run(cmd.Context())
	}),
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Send report reminders to the eligible monitorees",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		evaluator, err := a.evaluator(cmd.Context())
		if err != nil {
			return err
		}
		sweeper := a.sweeper(evaluator)

		once, _ := cmd.Flags().GetBool("once")
		if !once {
			return sweeper.Run(cmd.Context())
		}

		report, err := sweeper.RunOnce(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "candidates=%d eligible=%d outcomes=%v\n",
			report.Candidates, report.Eligible, report.Outcomes)
		return err
	}),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the api, the report consumer and the reminder sweep together",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		evaluator, err := a.evaluator(cmd.Context())
		if err != nil {
			return err
		}
		server := a.server(evaluator)
		sweeper := a.sweeper(evaluator)
		consumer := a.consumer()

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			return server.Run(ctx, a.addr())
		})
		g.Go(func() error {
			return consumer.Run(ctx)
		})
		g.Go(func() error {
			return sweeper.Run(ctx)
		})

		err = g.Wait()
		log.WithField("prefix", cmdLogPrefix).Info("all services stopped")
		return err
	}),
}

func init() {
	sweepCmd.Flags().Bool("once", false, "sweep once and exit")
}
