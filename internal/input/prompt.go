// Package input collects the search key and the label from the user one
// character at a time.
package input

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
	"github.com/Gaurav-Gosain/easyjump/internal/logging"
)

var (
	// ErrCancelled reports that the user dismissed the prompt or typed a
	// label that matches nothing.
	ErrCancelled = errors.New("input cancelled")
	// ErrTimeout reports that no character arrived in time.
	ErrTimeout = errors.New("timed out waiting for input")
)

// CharReader reads a single character typed in response to prompt.
// Implementations return ErrCancelled for an empty read and ErrTimeout
// when timeout elapses.
type CharReader interface {
	ReadChar(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}

// Prompt drives a CharReader through multi-character entries.
type Prompt struct {
	reader  CharReader
	timeout time.Duration
}

// NewPrompt creates a Prompt. Each character read is bounded by timeout.
func NewPrompt(r CharReader, timeout time.Duration) *Prompt {
	return &Prompt{reader: r, timeout: timeout}
}

// ReadKey reads an n character search key.
func (p *Prompt) ReadKey(ctx context.Context, n int) (string, error) {
	return p.read(ctx, "search for key", n, nil)
}

// ReadLabel reads a label of the given length. Entry stops with
// ErrCancelled as soon as the typed prefix matches no label.
func (p *Prompt) ReadLabel(ctx context.Context, length int, matches []jump.Match) (string, error) {
	return p.read(ctx, "goto label", length, func(prefix string) bool {
		return jump.HasPrefix(prefix, matches)
	})
}

func (p *Prompt) read(ctx context.Context, title string, n int, accept func(string) bool) (string, error) {
	var typed strings.Builder
	for range n {
		ch, err := p.reader.ReadChar(ctx, FormatPrompt(title, n, typed.String()), p.timeout)
		if err != nil {
			return "", err
		}
		if utf8.RuneCountInString(ch) != 1 {
			logging.Logger("input").Debug("non-character input", "value", ch)
			return "", ErrCancelled
		}
		typed.WriteString(ch)
		if accept != nil && !accept(typed.String()) {
			logging.Logger("input").Debug("no label starts with input", "typed", typed.String())
			return "", ErrCancelled
		}
	}
	return typed.String(), nil
}

// FormatPrompt renders the prompt shown while typed holds the characters
// entered so far, e.g. "goto label (2 chars): f_".
func FormatPrompt(title string, n int, typed string) string {
	unit := "char"
	if n >= 2 {
		unit = "chars"
	}
	blanks := max(n-utf8.RuneCountInString(typed), 0)
	return fmt.Sprintf("%s (%d %s): %s%s", title, n, unit, typed, strings.Repeat("_", blanks))
}
