package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/xslog"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the analysis pipeline",
		Long:  "Triggers the server-side analysis pipeline and waits for it to finish.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()
			ctx := cmd.Context()

			fmt.Println("Running analysis pipeline...")

			rctx, cancel := withTimeout(ctx, a.cfg.PipelineTimeout)
			defer cancel()

			outcome, err := a.insight.RunPipeline(rctx)
			if err != nil {
				return fmt.Errorf("pipeline failed: %w", err)
			}
			a.log(ctx).InfoContext(ctx, "pipeline finished", xslog.PipelineStatus(outcome.Status))

			if out := strings.TrimSpace(outcome.Output); out != "" {
				fmt.Println(out)
			}

			if !outcome.Succeeded {
				status := outcome.Status
				if status == "" {
					status = "pipeline returned no status"
				}
				if outcome.Error != "" {
					status += ": " + outcome.Error
				}
				return errors.New(status)
			}

			fmt.Println(outcome.Status)
			return nil
		},
	}
}
