package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for a single value.
type Prompter interface {
	Prompt(label string) (string, error)
}

// TerminalPrompter reads values without echo when In is a terminal, and
// falls back to plain line reads otherwise (e.g. piped input).
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer

	reader *bufio.Reader
}

// NewTerminalPrompter prompts on stderr and reads from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// Prompt writes label and reads one value.
func (p *TerminalPrompter) Prompt(label string) (string, error) {
	_, _ = fmt.Fprint(p.Out, label)

	fd := int(p.In.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(p.Out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
