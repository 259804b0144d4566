//go:build !release

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/xslog"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the analytics service",
		Long:  "Calls the health endpoint and reports the round trip.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()
			ctx := cmd.Context()

			rctx, cancel := withTimeout(ctx, a.cfg.RequestTimeout)
			defer cancel()

			start := time.Now()
			status, err := a.insight.Health(rctx)
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("%s is unreachable: %w", a.insight.BaseURL(), err)
			}
			a.log(ctx).DebugContext(ctx, "health checked", xslog.Duration(elapsed))

			fmt.Printf("%s: %s (%s)\n", a.insight.BaseURL(), status.Status, elapsed.Round(time.Millisecond))
			return nil
		},
	}
}
