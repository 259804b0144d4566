package main

import (
	"errors"
	"fmt"
	"os"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/client/insight"
	"github.com/garrettladley/cogdash/internal/tui/components/gauge"
	"github.com/garrettladley/cogdash/internal/tui/page/overview"
)

type metricsOutput struct {
	FocusQuality      *float64          `json:"fqs"`
	ContextSwitchCost *float64          `json:"csc"`
	SwitchingRate     *float64          `json:"switching_rate"`
	BurnoutScore      *float64          `json:"burnout_score"`
	BurnoutLevel      *string           `json:"burnout_level"`
	TotalHours        *float64          `json:"total_hours"`
	Recommendations   map[string]string `json:"recommendations,omitempty"`
}

func metricsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Fetch the current metrics once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()
			ctx := cmd.Context()

			rctx, cancel := withTimeout(ctx, a.cfg.RequestTimeout)
			defer cancel()

			snap, err := a.insight.Metrics(rctx)
			if err != nil {
				return fmt.Errorf("failed to fetch metrics: %w", err)
			}
			if !snap.Usable() {
				reason := snap.Reason
				if reason == "" {
					reason = "server reported no data"
				}
				return errors.New("no data available: " + reason)
			}

			if asJSON {
				return printMetricsJSON(snap)
			}
			printMetrics(snap)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the metrics as JSON")
	return cmd
}

func printMetricsJSON(s *insight.Snapshot) error {
	out := metricsOutput{
		FocusQuality:      s.FocusQuality,
		ContextSwitchCost: s.ContextSwitchCost,
		SwitchingRate:     s.SwitchingRate,
		BurnoutScore:      s.BurnoutScore,
		BurnoutLevel:      s.BurnoutLevel,
		TotalHours:        s.TotalHours,
	}
	if recs := s.Recommendations(); len(recs) > 0 {
		out.Recommendations = make(map[string]string, len(recs))
		for _, r := range recs {
			out.Recommendations[r.Key] = r.Text
		}
	}

	enc := go_json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printMetrics(s *insight.Snapshot) {
	level := gauge.Unknown
	if s.BurnoutLevel != nil {
		level = *s.BurnoutLevel
	}

	fmt.Printf("Focus quality        %s\n", overview.Format(s.FocusQuality, "%.0f%%"))
	fmt.Printf("Burnout score        %s (%s)\n", overview.Format(s.BurnoutScore, "%.1f/10"), level)
	fmt.Printf("Context switch cost  %s\n", overview.Format(s.ContextSwitchCost, "%.2f s/h"))
	fmt.Printf("Switching rate       %s\n", overview.Format(s.SwitchingRate, "%.1f /h"))
	fmt.Printf("Total hours          %s\n", overview.Format(s.TotalHours, "%.1f h"))

	if recs := s.Recommendations(); len(recs) > 0 {
		fmt.Println("\nRecommendations")
		for _, r := range recs {
			fmt.Printf("  • %s\n", r.Text)
		}
	}
}
