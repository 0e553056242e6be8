// Package display holds the surfaces a lookup result can be shown on.
package display

import (
	"context"
	"sync"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// Snapshot is what a Slot currently shows.
type Snapshot struct {
	Visible bool                 `json:"visible"`
	Pending string               `json:"pending,omitempty"`
	Result  *domain.LookupResult `json:"result,omitempty"`
}

// Slot keeps the single currently displayed result for concurrent readers.
// Every write overwrites the previous content.
type Slot struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewSlot creates an empty, hidden Slot.
func NewSlot() *Slot {
	return &Slot{}
}

func (s *Slot) Pending(_ context.Context, word string) error {
	s.set(Snapshot{Visible: true, Pending: word})
	return nil
}

func (s *Slot) Publish(_ context.Context, result *domain.LookupResult) error {
	s.set(Snapshot{Visible: true, Result: result})
	return nil
}

func (s *Slot) Hide(_ context.Context) error {
	s.set(Snapshot{})
	return nil
}

// Current returns what the slot shows right now.
func (s *Slot) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Slot) set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
