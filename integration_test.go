//go:build integration
// +build integration

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func buildBinary(t *testing.T) string {
	t.Helper()

	buildCmd := exec.Command("go", "build", "-o", "artistfetch_test", ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}
	t.Cleanup(func() { _ = os.Remove("artistfetch_test") })
	return "./artistfetch_test"
}

func newServer(t *testing.T, password string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != password {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Invalid Username or Password"}`))
				return
			}
			_, _ = w.Write([]byte(`{"username":"admin","token":"jwt","subsonicToken":"t","subsonicSalt":"s"}`))
		case "/api/artist":
			_, _ = w.Write([]byte(`[{"id":"1","name":"Never Fetched"}]`))
		case "/rest/getArtistInfo":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"externalInfoUpdatedAt": time.Now().UTC().Format(time.RFC3339),
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil {
		return -100
	}
	return 0
}

// TestRunLifecycle runs the binary end to end against a fake server
func TestRunLifecycle(t *testing.T) {
	bin := buildBinary(t)
	server := newServer(t, "secret")

	cmd := exec.Command(bin, server.URL, "-u", "admin", "-p", "secret")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	out, err := cmd.CombinedOutput()
	if code := exitCode(err); code != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", code, out)
	}
	if !strings.Contains(string(out), "Done! 0 skipped, 1 updated, 0 unchanged") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

// TestGiveUpExitCode checks the status after every login is rejected
func TestGiveUpExitCode(t *testing.T) {
	bin := buildBinary(t)
	server := newServer(t, "secret")

	// First attempt uses the flags, the next four read from stdin
	cmd := exec.Command(bin, server.URL, "-u", "admin", "-p", "wrong")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	cmd.Stdin = strings.NewReader(strings.Repeat("admin\nwrong\n", 4))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if code := exitCode(err); code != 255 {
		t.Fatalf("expected exit code 255, got %d\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Gave up after 5 attempts.") {
		t.Errorf("expected give up message, got:\n%s", out.String())
	}
	if n := strings.Count(out.String(), "Could not authenticate"); n != 5 {
		t.Errorf("expected 5 failures, got %d", n)
	}
}
