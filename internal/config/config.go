// Package config loads the easyjump user configuration and turns it,
// together with command-line overrides, into the immutable Config that
// drives a single search-and-jump run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
)

// DefaultPromptTimeout bounds every single-character read.
const DefaultPromptTimeout = 30 * time.Second

// UserConfig mirrors config.toml.
type UserConfig struct {
	Jump        JumpConfig        `toml:"jump"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// JumpConfig controls matching and the follow-up action.
type JumpConfig struct {
	Mode             string `toml:"mode"` // mouse or xcopy
	SmartCase        bool   `toml:"smart_case"`
	LabelChars       string `toml:"label_chars"`
	KeyLength        int    `toml:"key_length"` // characters prompted for when no key is given
	PrintCommandOnly bool   `toml:"print_command_only"`
	CopyLine         bool   `toml:"copy_line"`
	CopyWord         bool   `toml:"copy_word"`
	PasteAfter       bool   `toml:"paste_after"`
	PromptTimeout    string `toml:"prompt_timeout"`
}

// AppearanceConfig controls how labels are drawn.
type AppearanceConfig struct {
	Theme        string `toml:"theme"`
	LabelAttrs   string `toml:"label_attrs"`
	TextAttrs    string `toml:"text_attrs"`
	ColorProfile string `toml:"color_profile"` // auto, truecolor, ansi256, ansi, ascii
}

// KeybindingsConfig holds the tmux key bindings printed by `easyjump tmux-conf`.
type KeybindingsConfig struct {
	KeyTable string              `toml:"key_table"`
	Actions  map[string][]string `toml:"actions"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Jump: JumpConfig{
			Mode:             ModeMouse.String(),
			SmartCase:        true,
			LabelChars:       jump.DefaultAlphabet,
			KeyLength:        2,
			PrintCommandOnly: true,
			PromptTimeout:    DefaultPromptTimeout.String(),
		},
		Appearance: AppearanceConfig{
			ColorProfile: "auto",
		},
		Keybindings: KeybindingsConfig{
			KeyTable: "prefix",
			Actions: map[string][]string{
				ActionJumpMouse: {"j"},
				ActionJumpXCopy: {"J"},
				ActionCopyLine:  {},
				ActionCopyWord:  {},
			},
		},
	}
}

// GetConfigPath returns the path of config.toml.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("easyjump", "config.toml"))
}

// LoadUserConfig reads config.toml, creating it with defaults when it
// does not exist yet. Keys missing from the file keep their defaults.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveUserConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return ParseUserConfig(data)
}

// ParseUserConfig decodes TOML on top of the defaults and validates it.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveUserConfig writes cfg to path with a short header.
func SaveUserConfig(path string, cfg *UserConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# easyjump configuration file\n")
	sb.WriteString("# Command-line flags override every value set here.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")
	sb.Write(data)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values that cannot be fixed up silently.
func (c *UserConfig) Validate() error {
	if _, err := ParseMode(c.Jump.Mode); err != nil {
		return err
	}
	if err := validateAlphabet(c.Jump.LabelChars); err != nil {
		return err
	}
	if c.Jump.KeyLength < 1 || c.Jump.KeyLength > 2 {
		return fmt.Errorf("key_length must be 1 or 2, got %d", c.Jump.KeyLength)
	}
	if _, err := parseTimeout(c.Jump.PromptTimeout); err != nil {
		return err
	}
	if _, ok := colorProfiles[strings.ToLower(c.Appearance.ColorProfile)]; !ok {
		return fmt.Errorf("unknown color_profile %q", c.Appearance.ColorProfile)
	}
	if c.Keybindings.KeyTable == "" {
		return errors.New("keybindings.key_table must not be empty")
	}
	return nil
}

func validateAlphabet(chars string) error {
	seen := make(map[rune]bool)
	for _, r := range chars {
		if seen[r] {
			return fmt.Errorf("label_chars %q repeats %q", chars, r)
		}
		seen[r] = true
	}
	if len(seen) < 2 {
		return fmt.Errorf("label_chars needs at least 2 characters, got %d", utf8.RuneCountInString(chars))
	}
	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return DefaultPromptTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid prompt_timeout %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("prompt_timeout must be positive, got %s", d)
	}
	return d, nil
}
