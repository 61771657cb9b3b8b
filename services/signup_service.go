package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"potluck/domain"
	"potluck/errors"
	"potluck/repositories"
)

type ISignupService interface {
	List() []domain.Item
	Create(ctx context.Context, fields domain.Fields) (domain.Item, error)
	Update(ctx context.Context, id string, fields domain.Fields) (domain.Item, error)
	Delete(ctx context.Context, id string) error
	LoadAll(ctx context.Context)
}

// SignupService is the authoritative in-memory store. It exclusively owns
// the item map; every mutation is flushed to the durable backend before it
// is acknowledged to the caller.
type SignupService struct {
	mu      sync.Mutex
	items   map[string]domain.Item
	backend repositories.Backend
	log     *slog.Logger
}

func NewSignupService(backend repositories.Backend, log *slog.Logger) *SignupService {
	return &SignupService{
		items:   make(map[string]domain.Item),
		backend: backend,
		log:     log,
	}
}

// LoadAll replaces the in-memory map with the backend's current contents.
// A failed load is logged and leaves the map empty: the service starts
// degraded rather than refusing to start.
func (s *SignupService) LoadAll(ctx context.Context) {
	items, err := s.backend.LoadAll(ctx)
	if err != nil {
		s.log.Error("initial load failed, starting with empty list", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]domain.Item, len(items))
	for _, item := range items {
		s.items[item.ID] = item
	}
	s.log.Info("loaded items", "count", len(items))
}

// List returns every item sorted by section then name, both ascending.
func (s *SignupService) List() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *SignupService) Create(ctx context.Context, fields domain.Fields) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	item := domain.Item{
		ID:        s.newIDLocked(),
		Name:      fields.Name,
		Dish:      fields.Dish,
		Section:   fields.Section,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.items[item.ID] = item
	if err := s.flushLocked(ctx); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (s *SignupService) Update(ctx context.Context, id string, fields domain.Fields) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, errors.ErrNotFound
	}
	item.Name = fields.Name
	item.Dish = fields.Dish
	item.Section = fields.Section
	item.UpdatedAt = time.Now().UTC()
	s.items[id] = item
	if err := s.flushLocked(ctx); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (s *SignupService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return errors.ErrNotFound
	}
	delete(s.items, id)
	return s.flushLocked(ctx)
}

// newIDLocked draws random ids until one is free. UUIDs make a collision
// negligible, so the loop is a membership check, not a retry budget.
func (s *SignupService) newIDLocked() string {
	for {
		id := uuid.NewString()
		if _, taken := s.items[id]; !taken {
			return id
		}
	}
}

// flushLocked reconciles the backend with the full map. The in-memory
// mutation is kept even when the flush fails: the caller sees the error,
// the next successful flush converges the backend again.
func (s *SignupService) flushLocked(ctx context.Context) error {
	if err := s.backend.Flush(ctx, s.sortedLocked()); err != nil {
		s.log.Error("flush failed", "error", err)
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (s *SignupService) sortedLocked() []domain.Item {
	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return items[i].Section < items[j].Section
		}
		return items[i].Name < items[j].Name
	})
	return items
}
