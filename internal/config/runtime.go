package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/colorprofile"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
	"github.com/Gaurav-Gosain/easyjump/internal/theme"
)

// Mode selects how a resolved position is acted upon.
type Mode int

const (
	// ModeMouse emulates a mouse click at the position.
	ModeMouse Mode = iota
	// ModeXCopy moves the copy-mode cursor to the position.
	ModeXCopy
)

func (m Mode) String() string {
	switch m {
	case ModeXCopy:
		return "xcopy"
	default:
		return "mouse"
	}
}

// ParseMode parses "mouse" or "xcopy". Empty means mouse.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "mouse":
		return ModeMouse, nil
	case "xcopy":
		return ModeXCopy, nil
	default:
		return ModeMouse, fmt.Errorf("unknown mode %q (want mouse or xcopy)", s)
	}
}

var colorProfiles = map[string]colorprofile.Profile{
	"":          colorprofile.Unknown,
	"auto":      colorprofile.Unknown,
	"truecolor": colorprofile.TrueColor,
	"ansi256":   colorprofile.ANSI256,
	"ansi":      colorprofile.ANSI,
	"ascii":     colorprofile.ASCII,
}

// Config is everything one run needs. Build it once with New and pass it
// down; nothing reads configuration from anywhere else.
type Config struct {
	Mode             Mode
	SmartCase        bool
	LabelChars       string
	LabelAttrs       string
	TextAttrs        string
	ColorProfile     colorprofile.Profile // Unknown means detect
	PrintCommandOnly bool
	Key              string // empty: prompt for KeyLength characters
	KeyLength        int
	Cursor           *jump.Cursor // nil: use the pane cursor
	Regions          []jump.Region
	CopyLine         bool
	CopyWord         bool
	PasteAfter       bool
	PromptTimeout    time.Duration
}

// JumpOptions returns the matcher options.
func (c Config) JumpOptions() jump.Options {
	return jump.Options{
		SmartCase: c.SmartCase,
		Alphabet:  c.LabelChars,
		Regions:   c.Regions,
	}
}

// Overrides holds raw command-line values. Empty strings leave the
// configured value alone. Switches take "on" or "off".
type Overrides struct {
	Mode             string
	SmartCase        string
	LabelChars       string
	LabelAttrs       string
	TextAttrs        string
	Theme            string
	PrintCommandOnly string
	Key              string
	CursorPos        string
	Regions          string
	CopyLine         string
	CopyWord         string
	PasteAfter       string
	PromptTimeout    string
}

// ApplyOverrides copies the file-backed overrides into cfg.
func ApplyOverrides(o Overrides, cfg *UserConfig) error {
	if o.Mode != "" {
		cfg.Jump.Mode = o.Mode
	}
	if o.LabelChars != "" {
		cfg.Jump.LabelChars = o.LabelChars
	}
	if o.LabelAttrs != "" {
		cfg.Appearance.LabelAttrs = o.LabelAttrs
	}
	if o.TextAttrs != "" {
		cfg.Appearance.TextAttrs = o.TextAttrs
	}
	if o.Theme != "" {
		cfg.Appearance.Theme = o.Theme
	}
	if o.PromptTimeout != "" {
		cfg.Jump.PromptTimeout = o.PromptTimeout
	}

	switches := []struct {
		raw  string
		name string
		dst  *bool
	}{
		{o.SmartCase, "smart-case", &cfg.Jump.SmartCase},
		{o.PrintCommandOnly, "print-command-only", &cfg.Jump.PrintCommandOnly},
		{o.CopyLine, "copy-line", &cfg.Jump.CopyLine},
		{o.CopyWord, "copy-word", &cfg.Jump.CopyWord},
		{o.PasteAfter, "paste-after", &cfg.Jump.PasteAfter},
	}
	for _, s := range switches {
		if s.raw == "" {
			continue
		}
		v, err := ParseSwitch(s.raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", s.name, err)
		}
		*s.dst = v
	}
	return nil
}

// New applies o to user and builds the run configuration.
func New(user *UserConfig, o Overrides) (Config, error) {
	if err := ApplyOverrides(o, user); err != nil {
		return Config{}, err
	}
	if err := user.Validate(); err != nil {
		return Config{}, err
	}

	mode, _ := ParseMode(user.Jump.Mode)
	timeout, _ := parseTimeout(user.Jump.PromptTimeout)
	cfg := Config{
		Mode:             mode,
		SmartCase:        user.Jump.SmartCase,
		LabelChars:       user.Jump.LabelChars,
		ColorProfile:     colorProfiles[strings.ToLower(user.Appearance.ColorProfile)],
		PrintCommandOnly: user.Jump.PrintCommandOnly,
		KeyLength:        user.Jump.KeyLength,
		CopyLine:         user.Jump.CopyLine,
		CopyWord:         user.Jump.CopyWord,
		PasteAfter:       user.Jump.PasteAfter,
		PromptTimeout:    timeout,
	}

	if err := theme.Initialize(user.Appearance.Theme); err != nil {
		return Config{}, fmt.Errorf("failed to load theme: %w", err)
	}
	cfg.LabelAttrs = UnescapeAttrs(user.Appearance.LabelAttrs)
	if cfg.LabelAttrs == "" {
		cfg.LabelAttrs = theme.LabelAttrs()
	}
	cfg.TextAttrs = UnescapeAttrs(user.Appearance.TextAttrs)
	if cfg.TextAttrs == "" {
		cfg.TextAttrs = theme.TextAttrs()
	}

	if o.Key != "" {
		if n := utf8.RuneCountInString(o.Key); n > 2 {
			return Config{}, fmt.Errorf("--key must be 1 or 2 characters, got %d", n)
		}
		cfg.Key = o.Key
	}
	if o.CursorPos != "" {
		c, err := ParseCursor(o.CursorPos)
		if err != nil {
			return Config{}, err
		}
		cfg.Cursor = &c
	}
	if o.Regions != "" {
		regions, err := ParseRegions(o.Regions)
		if err != nil {
			return Config{}, err
		}
		cfg.Regions = regions
	}
	return cfg, nil
}

// ParseSwitch parses on/off style flag values.
func ParseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

// ParseCursor parses "x,y" (1-indexed column and line).
func ParseCursor(s string) (jump.Cursor, error) {
	nums, err := parseInts(s)
	if err != nil {
		return jump.Cursor{}, fmt.Errorf("invalid cursor position %q: %w", s, err)
	}
	if len(nums) != 2 {
		return jump.Cursor{}, fmt.Errorf("invalid cursor position %q: want x,y", s)
	}
	if nums[0] < 1 || nums[1] < 1 {
		return jump.Cursor{}, fmt.Errorf("invalid cursor position %q: coordinates start at 1", s)
	}
	return jump.Cursor{Column: nums[0], Line: nums[1]}, nil
}

// ParseRegions parses "x1,y1,x2,y2[,x1,y1,x2,y2...]".
func ParseRegions(s string) ([]jump.Region, error) {
	nums, err := parseInts(s)
	if err != nil {
		return nil, fmt.Errorf("invalid regions %q: %w", s, err)
	}
	if len(nums)%4 != 0 {
		return nil, fmt.Errorf("invalid regions %q: want groups of x1,y1,x2,y2", s)
	}
	regions := make([]jump.Region, 0, len(nums)/4)
	for i := 0; i < len(nums); i += 4 {
		regions = append(regions, jump.Region{X1: nums[i], Y1: nums[i+1], X2: nums[i+2], Y2: nums[i+3]})
	}
	return regions, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

var attrEscapes = strings.NewReplacer(
	`\033`, "\x1b",
	`\x1b`, "\x1b",
	`\e`, "\x1b",
	`\E`, "\x1b",
)

// UnescapeAttrs turns the textual escape spellings people put in shell
// and tmux configuration (\e, \033, \x1b) into real ESC bytes. Attribute
// strings are otherwise passed through untouched.
func UnescapeAttrs(s string) string {
	return attrEscapes.Replace(s)
}
