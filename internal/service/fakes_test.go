package service

import (
	"context"

	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/repository/memory"
	"prompt-manager/pkg/events"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// countingStorage wraps the in-memory backend and counts writes.
type countingStorage struct {
	*memory.StorageRepository
	sets int
}

func newCountingStorage() *countingStorage {
	return &countingStorage{StorageRepository: memory.NewStorageRepository()}
}

func (s *countingStorage) Set(ctx context.Context, key, value string) error {
	s.sets++
	return s.StorageRepository.Set(ctx, key, value)
}

// failingStorage returns fixed results for every call.
type failingStorage struct {
	value  string
	found  bool
	getErr error
	setErr error
	sets   int
}

func (s *failingStorage) Get(context.Context, string) (string, bool, error) {
	return s.value, s.found, s.getErr
}

func (s *failingStorage) Set(context.Context, string, string) error {
	s.sets++
	return s.setErr
}

type recordingNotifier struct {
	events []events.Event
}

func (r *recordingNotifier) Notify(_ context.Context, e events.Event) {
	r.events = append(r.events, e)
}

func (r *recordingNotifier) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}

func observedLogger() (logger.ILogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewZapLoggerFrom(zap.New(core)), logs
}

func sequenceIds(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}
