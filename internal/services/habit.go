// Package services wires the habit sequence to its durable store and
// enforces the creation rules the entity itself does not know about.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/habitkeep/internal/common"
	"github.com/dmitrijs2005/habitkeep/internal/datex"
	"github.com/dmitrijs2005/habitkeep/internal/habit"
	"github.com/dmitrijs2005/habitkeep/internal/logging"
	"github.com/dmitrijs2005/habitkeep/internal/store"
)

// HabitService owns the single in-memory habit sequence for the process.
// The top-level loop holds one instance and saves after every mutation;
// insertion order of the sequence is the display order.
type HabitService struct {
	store  *store.FileStore
	habits []*habit.Habit
	log    logging.Logger
}

func NewHabitService(fs *store.FileStore, log logging.Logger) *HabitService {
	return &HabitService{store: fs, log: log}
}

// Load populates the sequence from disk. It never fails; quarantined
// reports whether a corrupted file was backed up, so the caller can warn
// the user.
func (s *HabitService) Load(ctx context.Context) (quarantined bool) {
	doc, quarantined := s.store.Load(ctx)

	habits, dropped := store.Decode(doc)
	if dropped > 0 {
		s.log.Warn(ctx, "dropped broken habit entries", "count", dropped)
	}

	s.habits = habits
	return quarantined
}

// Save rewrites the whole store from the current sequence.
func (s *HabitService) Save(ctx context.Context) error {
	doc, err := store.Encode(s.habits)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	return nil
}

// Habits returns the live sequence in display order.
func (s *HabitService) Habits() []*habit.Habit {
	return s.habits
}

// FindByID returns the habit with the given id, or nil.
func (s *HabitService) FindByID(id string) *habit.Habit {
	for _, h := range s.habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Add appends a new habit created today. Names must be non-empty and
// unique case-insensitively among the active habits; a duplicate leaves
// the sequence unchanged and returns common.ErrDuplicateName.
func (s *HabitService) Add(name string) (*habit.Habit, error) {
	if name == "" {
		return nil, common.ErrEmptyName
	}
	for _, h := range s.habits {
		if strings.EqualFold(h.Name, name) {
			return nil, common.ErrDuplicateName
		}
	}

	h := habit.New(name, datex.TodayISO())
	s.habits = append(s.habits, h)
	return h, nil
}

// Delete removes exactly the habit with the given id, leaving all others
// and their completion histories untouched.
func (s *HabitService) Delete(id string) error {
	for i, h := range s.habits {
		if h.ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
