package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gaurav-Gosain/easyjump/internal/app"
	"github.com/Gaurav-Gosain/easyjump/internal/config"
	"github.com/Gaurav-Gosain/easyjump/internal/logging"
	"github.com/Gaurav-Gosain/easyjump/internal/tmux"
)

func runJump(ctx context.Context) error {
	closer, err := logging.Setup(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer closer.Close()
	}
	log := logging.Logger("main")

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	cfg, err := config.New(userConfig, overrides)
	if err != nil {
		return err
	}

	runner, err := tmux.NewExecRunner()
	if err != nil {
		return err
	}

	log.Debug("starting", "version", version, "mode", cfg.Mode, "key", cfg.Key)
	ctrl := tmux.NewController(runner, controllerOptions(cfg))
	if err := app.Run(ctx, ctrl, cfg); err != nil {
		log.Error("jump failed", "err", err)
		return err
	}
	return nil
}

func controllerOptions(cfg config.Config) tmux.Options {
	return tmux.Options{
		XCopy:            cfg.Mode == config.ModeXCopy,
		PrintCommandOnly: cfg.PrintCommandOnly,
		CopyLine:         cfg.CopyLine,
		CopyWord:         cfg.CopyWord,
		PasteAfter:       cfg.PasteAfter,
		LabelAttrs:       cfg.LabelAttrs,
		TextAttrs:        cfg.TextAttrs,
		ColorProfile:     cfg.ColorProfile,
		Stdout:           os.Stdout,
	}
}
