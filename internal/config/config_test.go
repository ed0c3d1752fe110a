package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/colorprofile"

	"github.com/Gaurav-Gosain/easyjump/internal/config"
	"github.com/Gaurav-Gosain/easyjump/internal/jump"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default configuration must validate: %v", err)
	}
	if cfg.Jump.Mode != "mouse" {
		t.Errorf("Expected default mode mouse, got %q", cfg.Jump.Mode)
	}
	if !cfg.Jump.SmartCase {
		t.Error("Expected smart case on by default")
	}
	if cfg.Jump.LabelChars != jump.DefaultAlphabet {
		t.Errorf("Expected default label chars, got %q", cfg.Jump.LabelChars)
	}
	if !cfg.Jump.PrintCommandOnly {
		t.Error("Expected print_command_only on by default")
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, action := range []string{config.ActionJumpMouse, config.ActionJumpXCopy} {
		keys, ok := cfg.Keybindings.Actions[action]
		if !ok {
			t.Errorf("Expected %s keybinding to exist", action)
			continue
		}
		if len(keys) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

// =============================================================================
// Parsing Tests
// =============================================================================

func TestParseUserConfig_KeepsDefaults(t *testing.T) {
	cfg, err := config.ParseUserConfig([]byte(`
[jump]
mode = "xcopy"
`))
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}
	if cfg.Jump.Mode != "xcopy" {
		t.Errorf("Expected mode xcopy, got %q", cfg.Jump.Mode)
	}
	if cfg.Jump.LabelChars != jump.DefaultAlphabet {
		t.Errorf("Missing keys must keep defaults, got label chars %q", cfg.Jump.LabelChars)
	}
	if cfg.Jump.KeyLength != 2 {
		t.Errorf("Expected key length 2, got %d", cfg.Jump.KeyLength)
	}
}

func TestParseUserConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad toml", "[jump\n"},
		{"unknown mode", "[jump]\nmode = \"teleport\""},
		{"one label char", "[jump]\nlabel_chars = \"a\""},
		{"repeated label char", "[jump]\nlabel_chars = \"abca\""},
		{"key length", "[jump]\nkey_length = 3"},
		{"timeout", "[jump]\nprompt_timeout = \"soon\""},
		{"negative timeout", "[jump]\nprompt_timeout = \"-1s\""},
		{"color profile", "[appearance]\ncolor_profile = \"sepia\""},
		{"key table", "[keybindings]\nkey_table = \"\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.ParseUserConfig([]byte(tc.toml)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSaveUserConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easyjump", "config.toml")

	cfg := config.DefaultConfig()
	cfg.Jump.LabelChars = "asdf"
	cfg.Appearance.Theme = "dracula"
	if err := config.SaveUserConfig(path, cfg); err != nil {
		t.Fatalf("SaveUserConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# easyjump configuration file") {
		t.Errorf("Expected header, got %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	loaded, err := config.ParseUserConfig(data)
	if err != nil {
		t.Fatalf("ParseUserConfig: %v", err)
	}
	if loaded.Jump.LabelChars != "asdf" || loaded.Appearance.Theme != "dracula" {
		t.Errorf("Round trip lost values: %+v", loaded)
	}
}

// =============================================================================
// Runtime Configuration Tests
// =============================================================================

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New(config.DefaultConfig(), config.Overrides{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.Mode != config.ModeMouse {
		t.Errorf("Expected mouse mode, got %v", cfg.Mode)
	}
	if cfg.PromptTimeout != config.DefaultPromptTimeout {
		t.Errorf("Expected default timeout, got %v", cfg.PromptTimeout)
	}
	if cfg.LabelAttrs != "\x1b[1;38;5;172m" {
		t.Errorf("Unexpected default label attrs %q", cfg.LabelAttrs)
	}
	if cfg.TextAttrs != "\x1b[0;38;5;237m" {
		t.Errorf("Unexpected default text attrs %q", cfg.TextAttrs)
	}
	if cfg.ColorProfile != colorprofile.Unknown {
		t.Errorf("Expected auto color profile, got %v", cfg.ColorProfile)
	}
	if cfg.Cursor != nil || cfg.Regions != nil || cfg.Key != "" {
		t.Errorf("Expected no per-run values, got %+v", cfg)
	}
}

func TestNew_ThemeDoesNotLeakBetweenBuilds(t *testing.T) {
	themed, err := config.New(config.DefaultConfig(), config.Overrides{Theme: "dracula"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	themedLabel := themed.LabelAttrs

	plain, err := config.New(config.DefaultConfig(), config.Overrides{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if plain.LabelAttrs != "\x1b[1;38;5;172m" || plain.TextAttrs != "\x1b[0;38;5;237m" {
		t.Errorf("Expected default attrs after a themed build, got %q / %q", plain.LabelAttrs, plain.TextAttrs)
	}
	if themed.LabelAttrs != themedLabel {
		t.Errorf("Themed config changed after a later build: %q -> %q", themedLabel, themed.LabelAttrs)
	}
}

func TestNew_Overrides(t *testing.T) {
	cfg, err := config.New(config.DefaultConfig(), config.Overrides{
		Mode:          "xcopy",
		SmartCase:     "off",
		LabelChars:    "abc",
		LabelAttrs:    `\e[1;31m`,
		Key:           "ab",
		CursorPos:     "3,4",
		Regions:       "1,1,10,2,1,5,10,6",
		CopyWord:      "on",
		PromptTimeout: "5s",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.Mode != config.ModeXCopy {
		t.Errorf("Expected xcopy mode, got %v", cfg.Mode)
	}
	if cfg.SmartCase {
		t.Error("Expected smart case off")
	}
	if cfg.LabelChars != "abc" {
		t.Errorf("Expected label chars abc, got %q", cfg.LabelChars)
	}
	if cfg.LabelAttrs != "\x1b[1;31m" {
		t.Errorf("Expected unescaped attrs, got %q", cfg.LabelAttrs)
	}
	if cfg.Key != "ab" {
		t.Errorf("Expected key ab, got %q", cfg.Key)
	}
	if cfg.Cursor == nil || *cfg.Cursor != (jump.Cursor{Column: 3, Line: 4}) {
		t.Errorf("Unexpected cursor %+v", cfg.Cursor)
	}
	if len(cfg.Regions) != 2 || cfg.Regions[1] != (jump.Region{X1: 1, Y1: 5, X2: 10, Y2: 6}) {
		t.Errorf("Unexpected regions %+v", cfg.Regions)
	}
	if !cfg.CopyWord || cfg.CopyLine {
		t.Errorf("Expected only copy word, got line=%v word=%v", cfg.CopyLine, cfg.CopyWord)
	}
	if cfg.PromptTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.PromptTimeout)
	}

	opts := cfg.JumpOptions()
	if opts.SmartCase || opts.Alphabet != "abc" || len(opts.Regions) != 2 {
		t.Errorf("JumpOptions did not carry the configuration: %+v", opts)
	}
}

func TestNew_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name string
		o    config.Overrides
	}{
		{"mode", config.Overrides{Mode: "fly"}},
		{"switch", config.Overrides{SmartCase: "maybe"}},
		{"key too long", config.Overrides{Key: "abc"}},
		{"cursor", config.Overrides{CursorPos: "3"}},
		{"cursor zero", config.Overrides{CursorPos: "0,1"}},
		{"regions", config.Overrides{Regions: "1,2,3"}},
		{"regions not numbers", config.Overrides{Regions: "a,b,c,d"}},
		{"label chars", config.Overrides{LabelChars: "aa"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.New(config.DefaultConfig(), tc.o); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		ok    bool
	}{
		{"on", true, true},
		{"ON", true, true},
		{"off", false, true},
		{"true", true, true},
		{"0", false, true},
		{"sometimes", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := config.ParseSwitch(tc.input)
			if (err == nil) != tc.ok {
				t.Fatalf("ParseSwitch(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseSwitch(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestUnescapeAttrs(t *testing.T) {
	for _, in := range []string{`\e[1m`, `\033[1m`, `\x1b[1m`, "\x1b[1m"} {
		if got := config.UnescapeAttrs(in); got != "\x1b[1m" {
			t.Errorf("UnescapeAttrs(%q) = %q", in, got)
		}
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys(config.ActionJumpMouse)
	if len(keys) == 0 || keys[0] != "j" {
		t.Errorf("Expected jump_mouse on j, got %v", keys)
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Actions[config.ActionCopyWord] = []string{"ctrl+w"}
	registry := config.NewKeybindRegistry(cfg)

	if action := registry.GetAction("C-w"); action != config.ActionCopyWord {
		t.Errorf("Expected copy_word for C-w, got %q", action)
	}
	if action := registry.GetAction("Ctrl+W"); action != config.ActionCopyWord {
		t.Errorf("Expected copy_word for Ctrl+W, got %q", action)
	}
}

func TestKeybindRegistry_DuplicateKeyFirstWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Actions[config.ActionJumpXCopy] = []string{"j"}
	registry := config.NewKeybindRegistry(cfg)

	if action := registry.GetAction("j"); action != config.ActionJumpMouse {
		t.Errorf("Expected the first action to keep j, got %q", action)
	}
	if keys := registry.GetKeys(config.ActionJumpXCopy); len(keys) != 0 {
		t.Errorf("Expected the duplicate to be dropped, got %v", keys)
	}
}

func TestKeybindRegistry_Problems(t *testing.T) {
	if problems := config.NewKeybindRegistry(config.DefaultConfig()).Problems(); len(problems) != 0 {
		t.Errorf("Expected no problems with defaults, got %v", problems)
	}

	cfg := config.DefaultConfig()
	cfg.Keybindings.Actions[config.ActionJumpXCopy] = []string{"j", "hyper+x", "J"}
	registry := config.NewKeybindRegistry(cfg)

	problems := registry.Problems()
	if len(problems) != 2 {
		t.Fatalf("Expected 2 problems, got %v", problems)
	}
	if !strings.Contains(problems[0], "already bound to jump_mouse") {
		t.Errorf("Expected a duplicate report, got %q", problems[0])
	}
	if !strings.Contains(problems[1], "unknown modifier") {
		t.Errorf("Expected an invalid key report, got %q", problems[1])
	}
	if keys := registry.GetKeys(config.ActionJumpXCopy); len(keys) != 1 || keys[0] != "J" {
		t.Errorf("Expected only J to stay bound, got %v", keys)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Actions[config.ActionJumpMouse] = []string{"j", "alt+j"}
	registry := config.NewKeybindRegistry(cfg)

	if got := registry.GetKeysForDisplay(config.ActionJumpMouse); got != "j, M-j" {
		t.Errorf("Expected %q, got %q", "j, M-j", got)
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if keys := registry.GetKeys("nonexistent_action"); len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if action := registry.GetAction("ctrl+shift+alt+x"); action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
}

func TestKeybindRegistry_TmuxBindCommands(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	lines := registry.TmuxBindCommands("/usr/local/bin/easyjump")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 bind lines, got %d: %v", len(lines), lines)
	}

	want := `bind-key -T prefix j run-shell -b "/usr/local/bin/easyjump --mode mouse --print-command-only on | sh"`
	if lines[0] != want {
		t.Errorf("Unexpected mouse binding:\n got %s\nwant %s", lines[0], want)
	}
	want = `bind-key -T prefix J run-shell -b "/usr/local/bin/easyjump --mode xcopy"`
	if lines[1] != want {
		t.Errorf("Unexpected xcopy binding:\n got %s\nwant %s", lines[1], want)
	}
}

// =============================================================================
// Key Normalizer Tests
// =============================================================================

func TestKeyNormalizer(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"j", "j"},
		{"J", "J"},
		{"ctrl+j", "C-j"},
		{"Ctrl+J", "C-j"},
		{"C-j", "C-j"},
		{"alt+ctrl+x", "C-M-x"},
		{"meta+enter", "M-Enter"},
		{"return", "Enter"},
		{"esc", "Escape"},
		{"space", "Space"},
		{"+", "+"},
		{"ctrl+-", "C--"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := normalizer.TmuxKey(tc.input)
			if err != nil {
				t.Fatalf("TmuxKey(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("TmuxKey(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeyNormalizer_ValidateKey(t *testing.T) {
	normalizer := config.NewKeyNormalizer()

	tests := []struct {
		input   string
		isValid bool
	}{
		{"ctrl+a", true},
		{"n", true},
		{"enter", true},
		{"tab", true},
		{"", false},
		{"hyper+a", false},
		{"banana", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			valid, _ := normalizer.ValidateKey(tc.input)
			if valid != tc.isValid {
				t.Errorf("ValidateKey(%q) = %v, want %v", tc.input, valid, tc.isValid)
			}
		})
	}
}

// =============================================================================
// Action Descriptions Tests
// =============================================================================

func TestActionDescriptions(t *testing.T) {
	for _, action := range []string{
		config.ActionJumpMouse,
		config.ActionJumpXCopy,
		config.ActionCopyLine,
		config.ActionCopyWord,
	} {
		desc, ok := config.ActionDescriptions[action]
		if !ok || desc == "" {
			t.Errorf("Expected description for action %q", action)
		}
		if len(config.ActionArgs(action)) == 0 {
			t.Errorf("Expected arguments for action %q", action)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = registry.GetAction("j")
	}
}

func BenchmarkTmuxKey(b *testing.B) {
	normalizer := config.NewKeyNormalizer()
	keys := []string{"ctrl+a", "Ctrl+Shift+B", "alt+1", "return"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = normalizer.TmuxKey(keys[i%len(keys)])
	}
}
