package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records that a word was looked up and which fields were found.
// The looked-up content itself is never stored.
type JournalEntry struct {
	ID          uuid.UUID
	Word        string
	HasMeanings bool
	HasAudio    bool
	LookedUpAt  time.Time
}

// NewJournalEntry summarizes a settled lookup for the journal.
func NewJournalEntry(result *LookupResult) JournalEntry {
	return JournalEntry{
		ID:          uuid.New(),
		Word:        CleanWord(result.Word),
		HasMeanings: result.HasMeanings(),
		HasAudio:    result.HasAudio(),
		LookedUpAt:  result.FetchedAt,
	}
}
