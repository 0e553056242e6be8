package testhelper

import (
	"context"
	"testing"
	"time"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	entry := SeedJournalEntry(t, pool, UniqueWord("smoke"), time.Now())

	var word string
	err := pool.QueryRow(
		context.Background(),
		`SELECT word FROM lookup_journal WHERE id = $1`,
		entry.ID,
	).Scan(&word)
	if err != nil {
		t.Fatalf("expected journal row in DB, got error: %v", err)
	}

	if word != entry.Word {
		t.Fatalf("expected word %q, got %q", entry.Word, word)
	}
}
