// Package auth logs in to a Navidrome server, prompting for credentials
// and retrying a bounded number of times.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jfmyers9/artistfetch/pkg/navidrome"
	"github.com/rs/zerolog"
)

// DefaultRetries is the number of login attempts before giving up.
const DefaultRetries = 5

// ErrGaveUp is returned when every login attempt was rejected.
var ErrGaveUp = errors.New("authentication abandoned")

// State is a step of the login state machine.
type State int

const (
	StateNeedCredentials State = iota // Missing username or password
	StateAuthenticating               // Login request in flight
	StateAuthenticated                // Session obtained
	StateGivenUp                      // Attempts exhausted
)

// String returns a human-readable representation of the State
func (s State) String() string {
	switch s {
	case StateNeedCredentials:
		return "need-credentials"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateGivenUp:
		return "given-up"
	default:
		return "unknown"
	}
}

// Login performs a single login exchange.
//
// *navidrome.AuthService satisfies this interface.
type Login interface {
	Login(ctx context.Context, username, password string) (*navidrome.LoginResponse, error)
}

// Config holds authenticator configuration
type Config struct {
	Retries  int       // Attempts before giving up (default: DefaultRetries)
	Prompter Prompter  // Source of missing credentials (default: terminal)
	Out      io.Writer // Where failures are reported (default: stdout)
}

// Authenticator drives the login state machine
type Authenticator struct {
	login    Login
	prompter Prompter
	out      io.Writer
	retries  int
	logger   zerolog.Logger

	state    State
	attempts int
}

// New creates a new Authenticator
func New(cfg Config, login Login, logger zerolog.Logger) *Authenticator {
	retries := cfg.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	prompter := cfg.Prompter
	if prompter == nil {
		prompter = NewTerminalPrompter()
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Authenticator{
		login:    login,
		prompter: prompter,
		out:      out,
		retries:  retries,
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// State returns the current state of the machine.
func (a *Authenticator) State() State {
	return a.state
}

// Attempts returns the number of login requests made by the last
// Authenticate call.
func (a *Authenticator) Attempts() int {
	return a.attempts
}

// Authenticate logs in and returns the resulting session.
//
// Empty username or password are prompted for. After a rejected login both
// are discarded, so the next attempt prompts again. Once every attempt has
// been rejected it prints a notice and returns ErrGaveUp.
//
// Errors that new credentials cannot fix (network failures, malformed
// success responses, prompt failures) are returned immediately.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*navidrome.Session, error) {
	a.state = StateNeedCredentials
	a.attempts = 0

	haveUser := username != ""
	havePass := password != ""

	var session *navidrome.Session

	for {
		switch a.state {
		case StateNeedCredentials:
			if a.attempts >= a.retries {
				a.state = StateGivenUp
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if !haveUser {
				u, err := a.prompter.Prompt("Username: ")
				if err != nil {
					return nil, fmt.Errorf("failed to read username: %w", err)
				}
				username, haveUser = u, true
			}
			if !havePass {
				p, err := a.prompter.Prompt("Password: ")
				if err != nil {
					return nil, fmt.Errorf("failed to read password: %w", err)
				}
				password, havePass = p, true
			}
			a.state = StateAuthenticating

		case StateAuthenticating:
			a.attempts++
			a.logger.Debug().
				Int("attempt", a.attempts).
				Int("max", a.retries).
				Str("username", username).
				Msg("Logging in")

			login, err := a.login.Login(ctx, username, password)
			if err != nil {
				var apiErr *navidrome.Error
				if !errors.As(err, &apiErr) {
					return nil, fmt.Errorf("login failed: %w", err)
				}
				_, _ = fmt.Fprintf(a.out, "Could not authenticate: %s\n", apiErr.Body)
				username, haveUser = "", false
				password, havePass = "", false
				a.state = StateNeedCredentials
				continue
			}

			session = login.Session()
			a.state = StateAuthenticated

		case StateAuthenticated:
			a.logger.Debug().
				Str("username", session.Subsonic.Username).
				Int("attempts", a.attempts).
				Msg("Authenticated")
			return session, nil

		case StateGivenUp:
			_, _ = fmt.Fprintf(a.out, "Gave up after %d attempts.\n", a.retries)
			return nil, ErrGaveUp

		default:
			return nil, fmt.Errorf("invalid auth state %d", a.state)
		}
	}
}
