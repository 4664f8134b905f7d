package navidrome

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantBaseURL string
		wantErr     bool
	}{
		{
			name:        "valid https",
			cfg:         Config{BaseURL: "https://music.example.com"},
			wantBaseURL: "https://music.example.com",
		},
		{
			name:        "trailing slash trimmed",
			cfg:         Config{BaseURL: "http://localhost:4533/"},
			wantBaseURL: "http://localhost:4533",
		},
		{
			name:        "sub path kept",
			cfg:         Config{BaseURL: "https://example.com/navidrome//"},
			wantBaseURL: "https://example.com/navidrome",
		},
		{
			name:    "missing base url",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			cfg:     Config{BaseURL: "ftp://music.example.com"},
			wantErr: true,
		},
		{
			name:    "no scheme",
			cfg:     Config{BaseURL: "music.example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.BaseURL() != tt.wantBaseURL {
				t.Errorf("expected base URL %q, got %q", tt.wantBaseURL, client.BaseURL())
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if client.httpClient != http.DefaultClient {
		t.Error("expected http.DefaultClient")
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, client.userAgent)
	}
	if client.Auth() == nil || client.Artists() == nil {
		t.Error("expected services to be initialized")
	}
	if client.Session() != nil {
		t.Error("expected no session")
	}
}

func TestNewClient_CustomHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client, err := NewClient(Config{BaseURL: "http://localhost", HTTPClient: custom})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if client.httpClient != custom {
		t.Error("expected custom HTTP client to be used")
	}
}

func TestClient_SetSession(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	sess := &Session{Token: "abc"}
	client.SetSession(sess)
	if client.Session() != sess {
		t.Error("expected session to be set")
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestClient_logDebugf(t *testing.T) {
	logger := &recordingLogger{}
	client, err := NewClient(Config{BaseURL: "http://localhost", Logger: logger})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	client.logDebugf("hello %s", "world")
	if len(logger.lines) != 1 {
		t.Errorf("expected 1 log line, got %d", len(logger.lines))
	}

	// No logger configured must not panic
	quiet, _ := NewClient(Config{BaseURL: "http://localhost"})
	quiet.logDebugf("ignored")
}
