package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/moodjournal/internal/client/cli"
	"github.com/dmitrijs2005/moodjournal/internal/client/config"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
)

// newRootCmd builds the command tree over cfg. Flags write straight into
// cfg, on top of what LoadConfig produced.
func newRootCmd(cfg *config.Config) *cobra.Command {
	var log logging.Logger = logging.Discard()

	root := &cobra.Command{
		Use:   "moodjournal",
		Short: "Terminal client for the mood journal",
		Long: `moodjournal records how you feel, with tags and a note, and shows your
entries as a timeline grouped by recency along with weekly mood charts.

Without a subcommand it starts an interactive session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log = logging.NewTextLogger(os.Stderr, level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
	config.BindFlags(root.PersistentFlags(), cfg)

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show entries grouped by recency and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), cfg, log, func(app *cli.App) func(context.Context) error {
				return app.Timeline
			})
		},
	}

	var daily bool
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "Show this week's mood distribution and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), cfg, log, func(app *cli.App) func(context.Context) error {
				return func(ctx context.Context) error { return app.Insights(ctx, daily) }
			})
		},
	}
	insightsCmd.Flags().BoolVarP(&daily, "daily", "d", false, "show the daily mood trend instead")

	root.AddCommand(timelineCmd, insightsCmd)
	return root
}

func runOnce(ctx context.Context, cfg *config.Config, log logging.Logger, pick func(*cli.App) func(context.Context) error) error {
	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	return app.RunOnce(ctx, pick(app))
}
