package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/cogdash/internal/client/github"
	"github.com/garrettladley/cogdash/internal/version"
	"github.com/garrettladley/cogdash/internal/xhttp"
	"github.com/garrettladley/cogdash/internal/xslog"
)

const modulePath = "github.com/garrettladley/cogdash/cmd/cogdash"

type releaseChecker interface {
	LatestRelease(ctx context.Context, owner, repo string) (*github.Release, error)
}

// plan is the outcome of comparing the running build with the latest release.
type plan struct {
	current string
	latest  *github.Release
	// reason is set when no upgrade will happen.
	reason string
}

func (p plan) upgradable() bool { return p.reason == "" }

func planUpgrade(ctx context.Context, rc releaseChecker, current string) (plan, error) {
	if version.IsDevelopment(current) {
		return plan{current: current, reason: fmt.Sprintf("cogdash %s is a development build; upgrades are skipped", current)}, nil
	}

	latest, err := rc.LatestRelease(ctx, github.Owner, github.Repo)
	if err != nil {
		return plan{}, fmt.Errorf("failed to check for updates: %w", err)
	}

	p := plan{current: current, latest: latest}
	if !version.IsNewer(current, latest.TagName) {
		p.reason = fmt.Sprintf("cogdash is up to date (%s)", current)
	}
	return p, nil
}

// installCommand returns the argv that replaces the running binary.
func installCommand(homebrew bool) []string {
	if homebrew {
		return []string{"brew", "upgrade", "cogdash"}
	}
	return []string{"go", "install", modulePath + "@latest"}
}

func upgradeCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink, err := openLog(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sink.close() }()
			ctx := cmd.Context()

			client := github.NewClient(github.WithHTTPClient(xhttp.NewHTTPClient(
				xhttp.WithTransport(xhttp.NewTransport(xhttp.WithSessionID(sink.sessionID))),
				xhttp.WithTimeout(github.DefaultTimeout),
			)))

			p, err := planUpgrade(ctx, client, version.Get())
			if err != nil {
				return err
			}
			if !p.upgradable() {
				fmt.Println(p.reason)
				return nil
			}

			fmt.Printf("cogdash %s → %s\n", p.current, p.latest.TagName)
			if p.latest.HTMLURL != "" {
				fmt.Printf("Release notes: %s\n", p.latest.HTMLURL)
			}
			if checkOnly {
				return nil
			}

			argv := installCommand(version.IsHomebrew())
			sink.log(ctx).InfoContext(ctx, "upgrading",
				xslog.Version(), slog.String("latest", p.latest.TagName), slog.String("installer", argv[0]))

			install := exec.CommandContext(ctx, argv[0], argv[1:]...)
			install.Stdout = os.Stdout
			install.Stderr = os.Stderr
			if err := install.Run(); err != nil {
				return fmt.Errorf("%s failed: %w", argv[0], err)
			}
			fmt.Println("Successfully updated!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	return cmd
}
