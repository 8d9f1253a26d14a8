package bootstrap

import (
	"context"
	"errors"

	"prompt-manager/internal/config"
	"prompt-manager/internal/controller"
	"prompt-manager/internal/handler"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/service"
	"prompt-manager/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	Logger logger.ILogger

	// Core
	Store     service.IPromptStore
	Selection service.ISelectionController

	// HTTP
	PromptController    controller.IPromptController
	NotificationHandler *handler.NotificationHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	closers []func() error
	loggers []logger.ILogger
}

// NewContainer wires the server: storage mirror, prompt store, selection
// controller, and the notice pipeline (selection -> gochannel -> hub).
// The store is loaded before returning.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	storage, closeStorage, err := NewStorage(ctx, cfg.Storage, cfg.Database.Connection, sysLogger)
	if err != nil {
		return nil, err
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	// 3. Notices
	wsLogger := logger.NewIsolatedLogger(cfg.App.NoticeLogFilePath)
	wsHub := websocket.NewHub(wsLogger)
	notifier := service.NewBusNotifier(pubSub, cfg.App.NoticeTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.NoticeTopic, wsHub, wsLogger)

	// 4. Services
	store := service.NewPromptStore(storage, cfg.Storage.Key, sysLogger)
	selection := service.NewSelectionController(store, notifier)
	selection.Reload(ctx)

	return &Container{
		Logger:              sysLogger,
		Store:               store,
		Selection:           selection,
		PromptController:    controller.NewPromptController(selection),
		NotificationHandler: handler.NewNotificationHandler(wsHub, wsLogger),
		ConsumerService:     consumerService,
		WebSocketHub:        wsHub,
		closers:             []func() error{pubSub.Close, closeStorage},
		loggers:             []logger.ILogger{wsLogger, sysLogger},
	}, nil
}

// Close shuts down the bus and the storage client, then flushes the loggers.
func (c *Container) Close() error {
	var errs []error
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, l := range c.loggers {
		// Sync on a console core fails on some terminals
		_ = l.Sync()
	}
	return errors.Join(errs...)
}
