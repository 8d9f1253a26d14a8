package main

import (
	"context"
	"os"

	"prompt-manager/internal/bootstrap"
	"prompt-manager/internal/cli"
	"prompt-manager/internal/config"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/service"

	"github.com/atotto/clipboard"
)

func main() {
	cfg := config.Load()

	// Log to file only; the terminal belongs to command output
	log := logger.NewIsolatedLogger(cfg.App.LogFilePath)

	open := func(ctx context.Context, notifier service.INotifier) (service.ISelectionController, func() error, error) {
		return bootstrap.NewLocalSelection(ctx, cfg, log, notifier)
	}

	code := cli.Execute(context.Background(), os.Args[1:], os.Stderr, cli.Options{
		Out:       os.Stdout,
		Open:      open,
		Clipboard: clipboard.WriteAll,
	})
	_ = log.Sync()
	os.Exit(code)
}
