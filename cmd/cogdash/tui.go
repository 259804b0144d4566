package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/dashboard"
	"github.com/garrettladley/cogdash/internal/tui"
	"github.com/garrettladley/cogdash/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
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
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				a.log(ctx).WarnContext(ctx, "closing history failed", xslog.Error(err))
			}
		}()
	}

	var p *tea.Program
	opts := []dashboard.Option{
		dashboard.WithLogger(a.logger),
		dashboard.WithRequestTimeout(a.cfg.RequestTimeout),
		dashboard.WithPipelineTimeout(a.cfg.PipelineTimeout),
		dashboard.WithOnChange(func(s dashboard.State) {
			p.Send(tui.StateMsg{State: s})
		}),
	}
	if store != nil {
		opts = append(opts, dashboard.WithHistory(store, a.cfg.History.Size))
	}
	manager := dashboard.New(a.insight, opts...)

	model := tui.New(tui.Deps{
		Ctx:       ctx,
		Logger:    a.logger,
		Dashboard: manager,
		Insight:   a.insight,
	})
	p = tea.NewProgram(&model, tea.WithContext(ctx))

	_, err = p.Run()
	// the event loop has exited, so no StateMsg send can block teardown
	manager.Teardown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
