package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	shlex "github.com/anmitsu/go-shlex"
	"github.com/cli/safeexec"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/easyjump/internal/config"
)

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// showConfig prints the effective user configuration as TOML
func showConfig() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(userConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := safeexec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	// $EDITOR may carry arguments, e.g. "code --wait".
	argv, err := shlex.Split(editor, true)
	if err != nil || len(argv) == 0 {
		return fmt.Errorf("invalid editor command %q", editor)
	}
	path, err := safeexec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("editor %q not found: %w", argv[0], err)
	}

	cmd := exec.Command(path, append(argv[1:], configPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	// Catch mistakes while the file is still fresh in mind.
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("config saved but invalid: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults(force bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to overwrite %s without a terminal; use --force", configPath)
		}
		if !confirm(os.Stdin, configPath) {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.SaveUserConfig(configPath, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: easyjump config edit")
	return nil
}

func confirm(in io.Reader, configPath string) bool {
	fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
	fmt.Printf("  %s\n\n", configPath)
	fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "yes" || response == "y"
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)
	fmt.Print(renderKeybindingsTable(registry))
	return nil
}

func renderKeybindingsTable(registry *config.KeybindRegistry) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	var rows [][]string
	for _, action := range config.Actions() {
		keys := registry.GetKeysForDisplay(action)
		if keys == "" {
			continue
		}
		rows = append(rows, []string{keys, action, config.ActionDescriptions[action]})
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("easyjump Keybindings"))
	sb.WriteString("\n")

	if len(rows) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("No keybindings configured."))
		sb.WriteString("\n")
		writeProblems(&sb, registry)
		return sb.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Key", "Action", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")

	note := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true).
		Render(fmt.Sprintf("Keys live in the %q tmux key table. Install them with: easyjump tmux-conf", registry.Table()))
	sb.WriteString(note)
	sb.WriteString("\n")
	writeProblems(&sb, registry)
	return sb.String()
}

func writeProblems(sb *strings.Builder, registry *config.KeybindRegistry) {
	problems := registry.Problems()
	if len(problems) == 0 {
		return
	}
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sb.WriteString("\n")
	sb.WriteString(warn.Bold(true).Render("Skipped keybindings"))
	sb.WriteString("\n")
	for _, p := range problems {
		sb.WriteString(warn.Render("  " + p))
		sb.WriteString("\n")
	}
}

// printTmuxConf writes bind-key lines that run this executable
func printTmuxConf(w io.Writer) error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not determine executable path: %w", err)
	}

	registry := config.NewKeybindRegistry(userConfig)
	fmt.Fprintln(w, "# easyjump key bindings")
	for _, p := range registry.Problems() {
		fmt.Fprintf(w, "# skipped %s\n", p)
	}
	for _, line := range registry.TmuxBindCommands(exe) {
		fmt.Fprintln(w, line)
	}
	return nil
}
