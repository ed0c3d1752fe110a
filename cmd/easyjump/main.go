// Package main implements easyjump, a jump-to-text tool for tmux.
// It labels every occurrence of a typed key on the visible pane and moves
// the cursor to the one whose label is typed next.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/easyjump/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode bool
	overrides config.Overrides
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "easyjump",
		Short: "Jump to any visible text in a tmux pane",
		Long: `easyjump - jump to visible text in tmux

Prompts for a short key in the tmux status line, labels every place the key
appears on the current pane and jumps to the place whose label you type.
Jumps are performed with a mouse click or by moving the copy-mode cursor.`,
		Example: `  # Bind it in tmux (prefix j / prefix J)
  easyjump tmux-conf >> ~/.tmux.conf

  # Jump with a mouse click, printing the tmux command for a shell to run
  easyjump --mode mouse --print-command-only on | sh

  # Jump in copy mode and copy the word at the target
  easyjump --mode xcopy --copy-word on

  # Search for a fixed key in part of the pane
  easyjump --key ab --regions 1,1,80,10`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJump(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	flags := rootCmd.Flags()
	flags.StringVar(&overrides.Mode, "mode", "", "Jump method: mouse or xcopy")
	flags.StringVar(&overrides.SmartCase, "smart-case", "", "Ignore case unless the key has uppercase letters (on/off)")
	flags.StringVar(&overrides.LabelChars, "label-chars", "", "Characters labels are made of, most preferred first")
	flags.StringVar(&overrides.LabelAttrs, "label-attrs", "", `SGR sequence for labels, e.g. '\e[1m\e[38;5;172m'`)
	flags.StringVar(&overrides.TextAttrs, "text-attrs", "", `SGR sequence for the dimmed text, e.g. '\e[0m\e[38;5;237m'`)
	flags.StringVar(&overrides.Theme, "theme", "", "Color theme for labels and text")
	flags.StringVar(&overrides.PrintCommandOnly, "print-command-only", "", "Print the mouse jump command instead of running it (on/off)")
	flags.StringVar(&overrides.Key, "key", "", "Search key; prompted for when empty")
	flags.StringVar(&overrides.CursorPos, "cursor-pos", "", "Cursor position used for label proximity, as x,y")
	flags.StringVar(&overrides.Regions, "regions", "", "Only match inside x1,y1,x2,y2[,...] rectangles")
	flags.StringVar(&overrides.CopyLine, "copy-line", "", "Copy from the target to the end of the line (xcopy, on/off)")
	flags.StringVar(&overrides.CopyWord, "copy-word", "", "Copy the word at the target (xcopy, on/off)")
	flags.StringVar(&overrides.PasteAfter, "paste-after", "", "Show the copied buffer after copying (xcopy, on/off)")
	flags.StringVar(&overrides.PromptTimeout, "prompt-timeout", "", "How long to wait for each typed character, e.g. 30s")

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage easyjump configuration",
		Long:  `Manage the easyjump configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration file merged over the defaults

Keys missing from the file are shown with their default values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the easyjump configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	var force bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the easyjump configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults(force)
		},
	}
	configResetCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite without asking")

	configCmd.AddCommand(configPathCmd, configShowCmd, configEditCmd, configResetCmd)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View tmux keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display the configured tmux keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	tmuxConfCmd := &cobra.Command{
		Use:   "tmux-conf",
		Short: "Print tmux bind-key lines",
		Long: `Print one bind-key line per configured keybinding

Append the output to ~/.tmux.conf, or source it with
  tmux source-file <(easyjump tmux-conf)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTmuxConf(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(configCmd, keybindsCmd, tmuxConfCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
