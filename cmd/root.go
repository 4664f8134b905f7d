/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfmyers9/artistfetch/internal/auth"
	"github.com/jfmyers9/artistfetch/internal/config"
	"github.com/jfmyers9/artistfetch/internal/fetcher"
	"github.com/jfmyers9/artistfetch/pkg/navidrome"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// exitGaveUp is the process status when authentication is abandoned.
const exitGaveUp = -1

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artistfetch <server>",
		Short: "Refresh stale artist info on a Navidrome server",
		Long: `artistfetch logs in to a Navidrome server and asks it to refresh
external artist info (biography, images) for every artist whose info
is older than a number of days.

The server is the base URL of your Navidrome instance, for example
https://music.example.com. Username and password are prompted for
when not given.

Settings may also come from ARTISTFETCH_* environment variables or
~/.config/artistfetch/config.yaml. Flags take precedence.

Exit codes:
  0   - Run completed
  1   - Invalid arguments or the artist list could not be read
  255 - Gave up after repeated login failures`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		RunE:    runFetch,
	}

	cmd.Flags().StringP(config.KeyUsername, "u", "", "The username to authenticate as (prompted if not provided)")
	cmd.Flags().StringP(config.KeyPassword, "p", "", "The password to authenticate with (prompted if not provided; may end up in shell history)")
	cmd.Flags().BoolP(config.KeyForce, "f", false, "Fetch artist info even if the last fetch was recent")
	cmd.Flags().IntP(config.KeyDaysSince, "d", fetcher.DefaultDaysSince, "Days until external info is considered stale and refetched")
	cmd.Flags().String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if errors.Is(err, auth.ErrGaveUp) {
		os.Exit(exitGaveUp)
	}
	if err != nil {
		os.Exit(1)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Usage is only useful for argument errors, which cobra reports before RunE
	cmd.SilenceUsage = true

	cfg, err := config.Load(cmd.Flags(), args)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	logger := setupLogger(out, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := navidrome.NewClient(navidrome.Config{
		BaseURL:   cfg.Server,
		UserAgent: "artistfetch/" + version,
		Logger:    debugLogger{logger: logger.With().Str("component", "navidrome").Logger()},
	})
	if err != nil {
		return err
	}

	logger.Debug().
		Str("server", client.BaseURL()).
		Bool("force", cfg.Force).
		Int("days_since", cfg.DaysSince).
		Msg("Starting artistfetch")

	authenticator := auth.New(auth.Config{Out: out}, client.Auth(), logger)
	session, err := authenticator.Authenticate(ctx, cfg.Username, cfg.Password)
	if err != nil {
		if errors.Is(err, auth.ErrGaveUp) {
			// Already reported by the authenticator
			cmd.SilenceErrors = true
			return err
		}
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	client.SetSession(session)

	f := fetcher.New(fetcher.Config{Out: out}, client.Artists(), logger)
	_, err = f.Run(ctx, fetcher.Options{
		Force:     cfg.Force,
		DaysSince: cfg.DaysSince,
	})
	if errors.Is(err, context.Canceled) {
		logger.Warn().Msg("Interrupted")
	}
	return err
}
