package logging_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/easyjump/internal/logging"
)

func TestLogger_FollowsSetOutput(t *testing.T) {
	t.Cleanup(func() { logging.SetOutput(io.Discard, log.WarnLevel) })

	var buf bytes.Buffer
	logging.SetOutput(&buf, log.InfoLevel)

	logging.Logger("tmux").Info("captured pane", "lines", 24)
	logging.Logger("tmux").Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "tmux") || !strings.Contains(out, "captured pane") {
		t.Errorf("Expected prefixed info line, got %q", out)
	}
	if !strings.Contains(out, "lines=24") {
		t.Errorf("Expected key/value pair, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug line must be filtered at info level, got %q", out)
	}
}
