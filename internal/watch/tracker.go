// Package watch detects flashcard changes on the host page and turns them
// into a stream of lookup triggers.
package watch

import (
	"time"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// Snapshot is one reading of the host page.
type Snapshot struct {
	// Present is false when the word or card element could not be located.
	Present  bool
	Word     string
	Revealed bool
}

// EventKind identifies what changed on the host page.
type EventKind int

const (
	// EventWordChanged: a new card is shown. Anything pending or displayed
	// for the previous word is invalid.
	EventWordChanged EventKind = iota + 1
	// EventReveal: the answer side of the current word was exposed and no
	// lookup has been triggered for it yet.
	EventReveal
)

func (k EventKind) String() string {
	switch k {
	case EventWordChanged:
		return "word_changed"
	case EventReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Event is a single notification on the detector stream.
type Event struct {
	Kind EventKind
	Word string
	At   time.Time
}

// Tracker holds the last known card state and decides which events a new
// Snapshot produces. It is not safe for concurrent use; the Detector owns it.
//
// Rules:
//   - a different (normalized) word resets the reveal state and re-arms the
//     trigger, emitting EventWordChanged;
//   - the first reveal of an armed word emits EventReveal and disarms it;
//   - the card turning back to its question side re-arms the trigger;
//   - an absent or empty word changes nothing.
type Tracker struct {
	word       string
	key        string
	revealed   bool
	dispatched bool
}

// NewTracker returns a Tracker that has not seen any word yet.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Word returns the current word as displayed by the host page.
func (t *Tracker) Word() string { return t.word }

// Revealed reports whether the current card shows its answer side.
func (t *Tracker) Revealed() bool { return t.revealed }

// Dispatched reports whether a trigger was already emitted for the current
// reveal of the current word.
func (t *Tracker) Dispatched() bool { return t.dispatched }

// Observe applies s and returns the resulting events in order.
func (t *Tracker) Observe(s Snapshot, now time.Time) []Event {
	if !s.Present {
		return nil
	}
	word := domain.CleanWord(s.Word)
	key := domain.NormalizeText(word)
	if key == "" {
		return nil
	}

	var events []Event

	if key != t.key {
		t.word = word
		t.key = key
		t.revealed = false
		t.dispatched = false
		events = append(events, Event{Kind: EventWordChanged, Word: word, At: now})
	}

	if !s.Revealed {
		if t.revealed {
			t.dispatched = false
		}
		t.revealed = false
		return events
	}

	t.revealed = true
	if !t.dispatched {
		t.dispatched = true
		events = append(events, Event{Kind: EventReveal, Word: t.word, At: now})
	}
	return events
}
