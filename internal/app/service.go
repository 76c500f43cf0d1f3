// Package service executes skill operations against the store and the
// badge engine. It is the backend the stub transport delegates to.
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/skillstub/skillstub/internal/adapters/repository"
	"github.com/skillstub/skillstub/internal/domain/badge"
	"github.com/skillstub/skillstub/internal/domain/model"
	"github.com/skillstub/skillstub/pkg/logger"
	"github.com/skillstub/skillstub/pkg/metrics"
)

// Service owns the canonical skill collection. Every operation is one
// load -> mutate -> save unit under the mutex, so no caller ever
// observes a torn collection.
type Service struct {
	mu    sync.Mutex
	store *repository.SkillStore
	newID func() string
	log   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIDGenerator overrides the id source for new skills. Tests use
// this for deterministic ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New constructs a Service over the given store.
func New(store *repository.SkillStore, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	s := &Service{
		store: store,
		newID: uuid.NewString,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns the stored collection in insertion order.
func (s *Service) List(ctx context.Context) ([]model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx), nil
}

// Create appends a new skill with a fresh unique id and persists the
// whole collection.
func (s *Service) Create(ctx context.Context, name string, level int) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill := model.Skill{ID: s.newID(), Name: name, Level: level}
	skills := append(s.store.Load(ctx), skill)
	if err := s.store.Save(ctx, skills); err != nil {
		return model.Skill{}, err
	}
	s.log.Debug(ctx, "skill created",
		logger.String("id", skill.ID),
		logger.String("name", skill.Name),
		logger.Int("level", skill.Level),
	)
	return skill, nil
}

// Update applies a partial patch to the skill with the given id.
// Fields absent from the patch are left untouched. Returns
// ErrSkillNotFound when the id is unknown.
func (s *Service) Update(ctx context.Context, id string, patch model.SkillPatch) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := s.store.Load(ctx)
	for i := range skills {
		if skills[i].ID != id {
			continue
		}
		if patch.Name != nil {
			skills[i].Name = *patch.Name
		}
		if patch.Level != nil {
			skills[i].Level = *patch.Level
		}
		if err := s.store.Save(ctx, skills); err != nil {
			return model.Skill{}, err
		}
		s.log.Debug(ctx, "skill updated", logger.String("id", id))
		return skills[i], nil
	}
	return model.Skill{}, ErrSkillNotFound
}

// Delete removes the skill with the given id. Returns ErrSkillNotFound
// when the id is unknown.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := s.store.Load(ctx)
	for i := range skills {
		if skills[i].ID != id {
			continue
		}
		skills = append(skills[:i], skills[i+1:]...)
		if err := s.store.Save(ctx, skills); err != nil {
			return err
		}
		s.log.Debug(ctx, "skill deleted", logger.String("id", id))
		return nil
	}
	return ErrSkillNotFound
}

// Badges recomputes the badge collection from the current skills.
// Badges are never persisted.
func (s *Service) Badges(ctx context.Context) ([]model.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	earned := badge.Compute(s.store.Load(ctx))
	for _, b := range earned {
		metrics.RecordBadgeAward(b.ID)
	}
	return earned, nil
}

// Count returns the number of stored skills.
func (s *Service) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.store.Load(ctx))
}
