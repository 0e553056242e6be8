package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// UniqueWord returns a word no other test will use, so parallel tests can
// share the journal table.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedJournalEntry inserts a journal row for word looked up at the given time.
func SeedJournalEntry(t *testing.T, pool *pgxpool.Pool, word string, at time.Time) domain.JournalEntry {
	t.Helper()

	entry := domain.JournalEntry{
		ID:          uuid.New(),
		Word:        word,
		HasMeanings: true,
		LookedUpAt:  at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lookup_journal (id, word, has_meanings, has_audio, looked_up_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Word, entry.HasMeanings, entry.HasAudio, entry.LookedUpAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed journal entry %q: %v", word, err)
	}

	return entry
}
