package navidrome

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Config holds client configuration.
type Config struct {
	BaseURL    string       // Required: server base URL, e.g. https://music.example.com
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	UserAgent  string       // Optional: User-Agent header (defaults to DefaultUserAgent)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Navidrome API operations.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     Logger

	session *Session

	auth    *AuthService
	artists *ArtistService
}

const (
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "artistfetch/dev"
)

// NewClient creates a new Navidrome API client.
//
// Returns an error if BaseURL is missing or is not an absolute http(s) URL.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid BaseURL %q: %v", ErrInvalidConfig, cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: BaseURL %q must use http or https", ErrInvalidConfig, cfg.BaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: BaseURL %q has no host", ErrInvalidConfig, cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     cfg.Logger,
	}

	c.auth = &AuthService{client: c}
	c.artists = &ArtistService{client: c}

	return c, nil
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Artists returns the artist service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// BaseURL returns the normalized server URL (no trailing slash).
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetSession sets the credentials used for authenticated requests.
func (c *Client) SetSession(s *Session) {
	c.session = s
}

// Session returns the current session, or nil if none has been set.
func (c *Client) Session() *Session {
	return c.session
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
