package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/history"
	"github.com/garrettladley/cogdash/internal/tui/page/overview"
	"github.com/garrettladley/cogdash/internal/xslog"
)

func historyCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded metrics",
		Long:  "Prints the snapshots recorded by previous dashboard sessions, oldest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}

			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()
			ctx := cmd.Context()

			store, err := a.openHistory(ctx)
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("history is disabled (set COGDASH_HISTORY to sqlite, redis or memory)")
			}
			defer func() {
				if err := store.Close(); err != nil {
					a.log(ctx).WarnContext(ctx, "closing history failed", xslog.Error(err))
				}
			}()

			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			if asJSON {
				enc := go_json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				fmt.Println("No history recorded yet")
				return nil
			}
			return printHistory(entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultCapacity, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entries as JSON")
	return cmd
}

func printHistory(entries []history.Entry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RECORDED\tFQS\tBURNOUT\tLEVEL\tCSC\tHOURS")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.RecordedAt.Local().Format(time.DateTime),
			overview.Format(e.FocusQuality, "%.0f%%"),
			overview.Format(e.BurnoutScore, "%.1f"),
			e.BurnoutLevel,
			overview.Format(e.ContextSwitchCost, "%.2f"),
			overview.Format(e.TotalHours, "%.1f"),
		)
	}
	return w.Flush()
}
