// Package fetcher refreshes stale artist external info on a Navidrome server.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jfmyers9/artistfetch/internal/progress"
	"github.com/jfmyers9/artistfetch/pkg/navidrome"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

// maxBodyWidth bounds how much of a server response ends up in a warning.
const maxBodyWidth = 160

// ArtistAPI is the subset of the Navidrome API the fetcher needs.
//
// *navidrome.ArtistService satisfies this interface.
type ArtistAPI interface {
	List(ctx context.Context) ([]navidrome.Artist, error)
	GetInfo(ctx context.Context, id string) (*navidrome.ArtistInfo, error)
}

// Config holds fetcher configuration
type Config struct {
	Out      io.Writer        // Progress and summary output (default: stdout)
	Now      func() time.Time // Clock (default: time.Now)
	BarWidth int              // Progress bar cells (default: progress.DefaultWidth)
}

// Options controls a single run.
type Options struct {
	Force     bool // Refresh every artist regardless of age
	DaysSince int  // Staleness threshold in days
}

// Fetcher walks the artist list and requests refreshes for stale entries
type Fetcher struct {
	api      ArtistAPI
	out      io.Writer
	now      func() time.Time
	barWidth int
	logger   zerolog.Logger
}

// New creates a new Fetcher
func New(cfg Config, api ArtistAPI, logger zerolog.Logger) *Fetcher {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Fetcher{
		api:      api,
		out:      out,
		now:      now,
		barWidth: cfg.BarWidth,
		logger:   logger.With().Str("component", "fetcher").Logger(),
	}
}

// Run lists all artists and refreshes the ones that are due.
//
// A failed listing is reported and, if the body still decodes, the run
// carries on with what was returned. A body that does not decode ends the
// run with an error. Per-artist failures are reported and never stop the
// run. The summary line is printed when every artist has been visited.
func (f *Fetcher) Run(ctx context.Context, opts Options) (Tally, error) {
	artists, err := f.api.List(ctx)
	if err != nil {
		var apiErr *navidrome.Error
		if errors.As(err, &apiErr) {
			f.logger.Warn().
				Int("status", apiErr.StatusCode).
				Str("body", clip(apiErr.Body)).
				Msg("Failed to fetch artists")
		}
		if apiErr == nil || errors.Is(err, navidrome.ErrDecode) {
			return Tally{}, fmt.Errorf("failed to list artists: %w", err)
		}
	}

	_, _ = fmt.Fprintf(f.out, "Refreshing %d artists\n", len(artists))

	// One snapshot for the whole run
	now := f.now().UTC()
	tally := Tally{Total: len(artists)}

	if len(artists) > 0 {
		brk := &lineBreak{out: f.out}
		logger := f.logger.Hook(brk)
		for _, artist := range progress.IterWidth(artists, f.out, f.barWidth) {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
			// The bar has just been drawn and ends in a carriage return
			brk.pending = true
			f.visit(ctx, logger, artist, now, opts, &tally)
		}
	}

	f.logger.Debug().
		Int("total", tally.Total).
		Int("skipped", tally.Skipped).
		Int("updated", tally.Updated).
		Int("failed", tally.Failed).
		Msg("Run complete")

	_, _ = fmt.Fprintln(f.out, tally.Summary())
	return tally, nil
}

// visit decides whether one artist is due and, if so, refreshes it.
func (f *Fetcher) visit(ctx context.Context, logger zerolog.Logger, artist navidrome.Artist, now time.Time, opts Options, tally *Tally) {
	logger = logger.With().
		Str("artist", artist.Name).
		Str("id", artist.ID.String()).
		Logger()

	last := artist.LastUpdated()

	var due bool
	updated, err := ParseTimestamp(last)
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot read external info timestamp, refreshing")
		due = true
	} else {
		age := DaysSince(now, updated)
		due = IsDue(age, opts.DaysSince, opts.Force)
		logger.Debug().
			Int("age_days", age).
			Str("last_updated", describeAge(last, updated, now)).
			Bool("due", due).
			Msg("Checked artist")
	}

	if !due {
		tally.Skipped++
		return
	}

	info, err := f.api.GetInfo(ctx, artist.ID.String())
	if err != nil {
		var apiErr *navidrome.Error
		if errors.As(err, &apiErr) {
			logger.Warn().
				Int("status", apiErr.StatusCode).
				Str("body", clip(apiErr.Body)).
				Msgf("Failed to fetch %s", artist.Name)
		} else {
			logger.Warn().Err(err).Msgf("Failed to fetch %s", artist.Name)
		}
		if info == nil {
			tally.Failed++
			return
		}
	}

	if envErr := info.Err(); envErr != nil {
		logger.Warn().Err(envErr).Msgf("Server rejected refresh of %s", artist.Name)
	}

	if info.UpdatedAt(last) != last {
		tally.Updated++
	}
}

// lineBreak is a zerolog hook that ends an unfinished progress line before
// a log event is written, so the event does not overwrite the bar.
type lineBreak struct {
	out     io.Writer
	pending bool
}

func (h *lineBreak) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if h.pending {
		_, _ = fmt.Fprintln(h.out)
		h.pending = false
	}
}

func describeAge(raw string, t, now time.Time) string {
	if raw == navidrome.NeverUpdated {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// clip collapses whitespace and truncates s to maxBodyWidth display cells.
func clip(s string) string {
	return runewidth.Truncate(strings.Join(strings.Fields(s), " "), maxBodyWidth, "...")
}
