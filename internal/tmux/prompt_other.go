//go:build !unix

package tmux

import (
	"context"
	"errors"
	"time"
)

func readChar(context.Context, Runner, string, time.Duration) (string, error) {
	return "", errors.New("interactive prompts need a unix fifo")
}
