package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yanqian/celestial/internal/domain/lunar"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "celestial",
		Short:         "Moon phase calendar and astronomy lookup service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newPhaseCmd(), newCalendarCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	if err := app.Run(cmd.Context()); err != nil {
		return fmt.Errorf("application stopped with error: %w", err)
	}
	return nil
}

func newPhaseCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Print the moon phase for a date (YYYY-MM-DD, default today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := initializeLunarService()
			if err != nil {
				return err
			}
			day, err := svc.Phase(cmd.Context(), lunar.PhaseRequest{Date: date})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), day)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD")
	return cmd
}

func newCalendarCmd() *cobra.Command {
	var (
		month string
		days  int
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the moon phase calendar for a month (YYYY-MM, default current)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := initializeLunarService()
			if err != nil {
				return err
			}
			resp, err := svc.Calendar(cmd.Context(), lunar.CalendarRequest{Month: month, Days: days})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month in YYYY-MM")
	cmd.Flags().IntVar(&days, "days", 0, "number of days to list (0 uses the configured default)")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
