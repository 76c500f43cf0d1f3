package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillstub/skillstub/internal/domain/model"
	"github.com/skillstub/skillstub/internal/domain/types"
	"github.com/skillstub/skillstub/pkg/logger"
	"github.com/skillstub/skillstub/pkg/metrics"
)

// SkillStore persists the whole skill collection as one JSON array in a
// Slot. Loads are forgiving: an absent, unreadable, or malformed payload
// yields an empty collection and never an error.
type SkillStore struct {
	slot Slot
	log  logger.Logger
}

// Option applies a configuration option to the SkillStore.
type Option func(*SkillStore)

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *SkillStore) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSkillStore creates a store over the given slot.
func NewSkillStore(slot Slot, opts ...Option) (*SkillStore, error) {
	if slot == nil {
		return nil, ErrNilSlot
	}
	s := &SkillStore{
		slot: slot,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load reads the persisted collection. Decode failures reset the
// collection to empty rather than surfacing an error; they are logged
// and counted so a corrupted slot is still visible operationally.
func (s *SkillStore) Load(ctx context.Context) []model.Skill {
	data, ok, err := s.slot.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "slot read failed; treating as empty", logger.Error(err))
		metrics.RecordStoreDecodeFailure()
		return []model.Skill{}
	}
	if !ok {
		return []model.Skill{}
	}
	var wire []types.Skill
	if err := json.Unmarshal(data, &wire); err != nil {
		s.log.Warn(ctx, "slot payload malformed; resetting to empty", logger.Error(err))
		metrics.RecordStoreDecodeFailure()
		return []model.Skill{}
	}
	skills := make([]model.Skill, len(wire))
	for i, w := range wire {
		skills[i] = model.Skill{ID: w.ID, Name: w.Name, Level: w.Level}
	}
	return skills
}

// Save serializes the whole collection and overwrites the slot in a
// single write.
func (s *SkillStore) Save(ctx context.Context, skills []model.Skill) error {
	data, err := json.Marshal(types.SkillsFromModel(skills))
	if err != nil {
		return fmt.Errorf("encode skill collection: %w", err)
	}
	if err := s.slot.Set(ctx, data); err != nil {
		return fmt.Errorf("persist skill collection: %w", err)
	}
	metrics.UpdateStoreSkills(len(skills))
	return nil
}
