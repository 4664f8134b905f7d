package auth

import (
	"bytes"
	"os"
	"testing"
)

func TestTerminalPrompter_NonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })

	_, _ = w.WriteString("alice\r\nhunter2")
	_ = w.Close()

	var out bytes.Buffer
	p := &TerminalPrompter{In: r, Out: &out}

	user, err := p.Prompt("Username: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != "alice" {
		t.Errorf("expected alice, got %q", user)
	}

	pass, err := p.Prompt("Password: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pass != "hunter2" {
		t.Errorf("expected hunter2, got %q", pass)
	}

	if _, err := p.Prompt("Again: "); err == nil {
		t.Error("expected error at end of input")
	}

	if out.String() != "Username: Password: Again: " {
		t.Errorf("unexpected prompt output %q", out.String())
	}
}
