package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Gaurav-Gosain/easyjump/internal/tmux"
)

// Bindable actions. Each maps to one easyjump invocation.
const (
	ActionJumpMouse = "jump_mouse"
	ActionJumpXCopy = "jump_xcopy"
	ActionCopyLine  = "copy_line"
	ActionCopyWord  = "copy_word"
)

// ActionDescriptions describes every bindable action.
var ActionDescriptions = map[string]string{
	ActionJumpMouse: "Jump by emulating a mouse click",
	ActionJumpXCopy: "Jump in copy mode",
	ActionCopyLine:  "Jump in copy mode and copy to end of line",
	ActionCopyWord:  "Jump in copy mode and copy the word",
}

// actionOrder is the display order for listings and generated config.
var actionOrder = []string{ActionJumpMouse, ActionJumpXCopy, ActionCopyLine, ActionCopyWord}

// Actions returns every bindable action in display order.
func Actions() []string {
	return slices.Clone(actionOrder)
}

// ActionArgs returns the easyjump flags an action runs with.
func ActionArgs(action string) []string {
	switch action {
	case ActionJumpMouse:
		return []string{"--mode", "mouse", "--print-command-only", "on"}
	case ActionJumpXCopy:
		return []string{"--mode", "xcopy"}
	case ActionCopyLine:
		return []string{"--mode", "xcopy", "--copy-line", "on"}
	case ActionCopyWord:
		return []string{"--mode", "xcopy", "--copy-word", "on"}
	default:
		return nil
	}
}

// Keybinding is one resolved binding.
type Keybinding struct {
	Action      string
	Key         string // tmux key name
	Description string
}

// KeybindRegistry maps actions to tmux keys and back.
type KeybindRegistry struct {
	table      string
	actionKeys map[string][]string
	keyAction  map[string]string
	normalizer *KeyNormalizer
	problems   []string
}

// NewKeybindRegistry builds a registry from the user configuration.
// Invalid keys and keys already claimed by an earlier action are skipped
// and reported by Problems. Unknown actions are ignored.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		table:      cfg.Keybindings.KeyTable,
		actionKeys: make(map[string][]string),
		keyAction:  make(map[string]string),
		normalizer: NewKeyNormalizer(),
	}
	for _, action := range actionOrder {
		for _, key := range cfg.Keybindings.Actions[action] {
			if ok, reason := r.normalizer.ValidateKey(key); !ok {
				r.problems = append(r.problems, fmt.Sprintf("%s: %s", action, reason))
				continue
			}
			if owner := r.GetAction(key); owner != "" {
				r.problems = append(r.problems, fmt.Sprintf("%s: key %q is already bound to %s", action, key, owner))
				continue
			}
			tmuxKey, _ := r.normalizer.TmuxKey(key)
			r.actionKeys[action] = append(r.actionKeys[action], tmuxKey)
			r.keyAction[tmuxKey] = action
		}
	}
	return r
}

// Problems lists the configured keys that were skipped, one line each.
func (r *KeybindRegistry) Problems() []string {
	return r.problems
}

// Table returns the tmux key table bindings are created in.
func (r *KeybindRegistry) Table() string {
	return r.table
}

// GetKeys returns the tmux keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionKeys[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	tmuxKey, err := r.normalizer.TmuxKey(key)
	if err != nil {
		return ""
	}
	return r.keyAction[tmuxKey]
}

// GetKeysForDisplay returns the keys of action joined for display.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionKeys[action], ", ")
}

// Bindings lists every bound key in display order.
func (r *KeybindRegistry) Bindings() []Keybinding {
	var out []Keybinding
	for _, action := range actionOrder {
		for _, key := range r.actionKeys[action] {
			out = append(out, Keybinding{Action: action, Key: key, Description: ActionDescriptions[action]})
		}
	}
	return out
}

// TmuxBindCommands returns one bind-key line per binding. executable is
// the command tmux should run, usually the absolute path of easyjump.
func (r *KeybindRegistry) TmuxBindCommands(executable string) []string {
	var lines []string
	for _, b := range r.Bindings() {
		cmd := tmux.ShellQuote(executable) + " " + strings.Join(ActionArgs(b.Action), " ")
		if b.Action == ActionJumpMouse {
			cmd += " | sh"
		}
		lines = append(lines, fmt.Sprintf("bind-key -T %s %s run-shell -b %s",
			r.table, tmux.Quote(b.Key), tmux.Quote(cmd)))
	}
	return lines
}

// KeyNormalizer converts human key spellings ("ctrl+j", "Alt+x") to tmux
// key names ("C-j", "M-x").
type KeyNormalizer struct {
	modifiers map[string]string
	named     map[string]string
}

// NewKeyNormalizer creates a normalizer with the tmux key vocabulary.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		modifiers: map[string]string{
			"ctrl":  "C-",
			"c":     "C-",
			"alt":   "M-",
			"meta":  "M-",
			"m":     "M-",
			"shift": "S-",
			"s":     "S-",
		},
		named: map[string]string{
			"enter":     "Enter",
			"return":    "Enter",
			"esc":       "Escape",
			"escape":    "Escape",
			"tab":       "Tab",
			"btab":      "BTab",
			"space":     "Space",
			"bspace":    "BSpace",
			"backspace": "BSpace",
			"up":        "Up",
			"down":      "Down",
			"left":      "Left",
			"right":     "Right",
			"home":      "Home",
			"end":       "End",
			"pageup":    "PPage",
			"pgup":      "PPage",
			"pagedown":  "NPage",
			"pgdn":      "NPage",
		},
	}
}

// TmuxKey normalizes key. Modifiers are separated by "+" or "-".
func (n *KeyNormalizer) TmuxKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	// A lone separator is a key of its own.
	if key == "+" || key == "-" {
		return key, nil
	}

	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '+' || r == '-' })
	if strings.HasSuffix(key, "+") || strings.HasSuffix(key, "-") {
		parts = append(parts, key[len(key)-1:])
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("invalid key %q", key)
	}

	var prefix strings.Builder
	var seen []string
	for _, mod := range parts[:len(parts)-1] {
		tm, ok := n.modifiers[strings.ToLower(mod)]
		if !ok {
			return "", fmt.Errorf("unknown modifier %q in %q", mod, key)
		}
		if slices.Contains(seen, tm) {
			continue
		}
		seen = append(seen, tm)
	}
	// tmux canonical modifier order
	for _, tm := range []string{"C-", "M-", "S-"} {
		if slices.Contains(seen, tm) {
			prefix.WriteString(tm)
		}
	}

	base := parts[len(parts)-1]
	if named, ok := n.named[strings.ToLower(base)]; ok {
		return prefix.String() + named, nil
	}
	if utf8.RuneCountInString(base) != 1 {
		return "", fmt.Errorf("unknown key %q", base)
	}
	if len(seen) > 0 {
		base = strings.ToLower(base)
	}
	return prefix.String() + base, nil
}

// ValidateKey reports whether key can be bound, with the reason if not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if _, err := n.TmuxKey(key); err != nil {
		return false, err.Error()
	}
	return true, ""
}
