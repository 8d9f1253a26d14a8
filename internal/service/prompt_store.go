package service

import (
	"context"
	"encoding/json"
	"errors"

	"prompt-manager/internal/entity"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/internal/repository/contract"

	"github.com/google/uuid"
)

var ErrPromptNotFound = errors.New("prompt not found")

// maxIdAttempts bounds retries against a custom generator before falling back to uuid.
const maxIdAttempts = 5

// IPromptStore owns the prompt collection and mirrors it to durable storage.
// It is not safe for concurrent use.
type IPromptStore interface {
	Load(ctx context.Context)
	GetAll() []entity.Prompt
	FindById(id string) *entity.Prompt
	Create(ctx context.Context, title, content string) string
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) bool
	Persist(ctx context.Context) error
}

type promptStore struct {
	storage contract.StorageRepository
	key     string
	logger  logger.ILogger
	newId   func() string

	// newest first
	prompts []entity.Prompt
}

type PromptStoreOption func(*promptStore)

// WithIdGenerator replaces the uuid generator, mainly for tests.
func WithIdGenerator(fn func() string) PromptStoreOption {
	return func(s *promptStore) {
		s.newId = fn
	}
}

func NewPromptStore(storage contract.StorageRepository, key string, log logger.ILogger, opts ...PromptStoreOption) IPromptStore {
	s := &promptStore{
		storage: storage,
		key:     key,
		logger:  log,
		newId:   uuid.NewString,
		prompts: []entity.Prompt{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the durable mirror. Missing,
// unreadable or corrupt data yields an empty collection; the failure is
// logged and never returned.
func (s *promptStore) Load(ctx context.Context) {
	s.prompts = []entity.Prompt{}

	raw, found, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("PromptStore", "Failed to read prompts", map[string]interface{}{"key": s.key, "error": err})
		return
	}
	if !found {
		s.logger.Debug("PromptStore", "No stored prompts, starting empty", map[string]interface{}{"key": s.key})
		return
	}

	var stored []entity.Prompt
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Error("PromptStore", "Failed to parse stored prompts", map[string]interface{}{"key": s.key, "error": err})
		return
	}

	seen := make(map[string]bool, len(stored))
	for _, p := range stored {
		if seen[p.Id] {
			s.logger.Warn("PromptStore", "Dropping prompt with duplicate id", map[string]interface{}{"id": p.Id})
			continue
		}
		seen[p.Id] = true
		s.prompts = append(s.prompts, p)
	}

	s.logger.Debug("PromptStore", "Prompts loaded", map[string]interface{}{"count": len(s.prompts)})
}

func (s *promptStore) GetAll() []entity.Prompt {
	out := make([]entity.Prompt, len(s.prompts))
	copy(out, s.prompts)
	return out
}

func (s *promptStore) FindById(id string) *entity.Prompt {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	p := s.prompts[i]
	return &p
}

func (s *promptStore) Create(ctx context.Context, title, content string) string {
	id := s.nextId()

	prompt := entity.Prompt{
		Id:      id,
		Title:   title,
		Content: content,
	}
	s.prompts = append([]entity.Prompt{prompt}, s.prompts...)

	_ = s.Persist(ctx)
	return id
}

func (s *promptStore) Update(ctx context.Context, id, title, content string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrPromptNotFound
	}

	s.prompts[i].Title = title
	s.prompts[i].Content = content

	_ = s.Persist(ctx)
	return nil
}

func (s *promptStore) Delete(ctx context.Context, id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.prompts = append(s.prompts[:i], s.prompts[i+1:]...)

	_ = s.Persist(ctx)
	return true
}

// Persist writes the whole collection under the storage key. On failure the
// in-memory collection is kept as is; the two stay out of sync until the
// next successful write.
func (s *promptStore) Persist(ctx context.Context) error {
	data, err := json.Marshal(s.prompts)
	if err != nil {
		s.logger.Error("PromptStore", "Failed to encode prompts", map[string]interface{}{"error": err})
		return err
	}

	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Error("PromptStore", "Failed to save prompts", map[string]interface{}{"key": s.key, "count": len(s.prompts), "error": err})
		return err
	}
	return nil
}

// nextId returns an id not present in the collection.
func (s *promptStore) nextId() string {
	for attempt := 0; attempt < maxIdAttempts; attempt++ {
		id := s.newId()
		if s.indexOf(id) < 0 {
			return id
		}
		s.logger.Warn("PromptStore", "Generated id already taken, retrying", map[string]interface{}{"id": id, "attempt": attempt + 1})
	}

	s.logger.Warn("PromptStore", "Id generator keeps colliding, falling back to uuid", map[string]interface{}{"attempts": maxIdAttempts})
	id := uuid.NewString()
	for s.indexOf(id) >= 0 {
		id = uuid.NewString()
	}
	return id
}

func (s *promptStore) indexOf(id string) int {
	for i := range s.prompts {
		if s.prompts[i].Id == id {
			return i
		}
	}
	return -1
}
