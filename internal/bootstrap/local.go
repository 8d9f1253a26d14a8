package bootstrap

import (
	"context"

	"prompt-manager/internal/config"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/service"
)

// NewLocalSelection wires a selection controller over the configured storage
// for single-shot tools such as promptctl. Notices go straight to notifier
// instead of through the bus. The controller is loaded before returning.
func NewLocalSelection(ctx context.Context, cfg *config.Config, log logger.ILogger, notifier service.INotifier) (service.ISelectionController, func() error, error) {
	storage, closeStorage, err := NewStorage(ctx, cfg.Storage, cfg.Database.Connection, log)
	if err != nil {
		return nil, nil, err
	}

	store := service.NewPromptStore(storage, cfg.Storage.Key, log)
	selection := service.NewSelectionController(store, notifier)
	selection.Reload(ctx)

	return selection, closeStorage, nil
}
