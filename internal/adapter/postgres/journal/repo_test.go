package journal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres/journal"
	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/vocab-helper/internal/domain"
)

func newRepo(t *testing.T) *journal.Repo {
	t.Helper()
	return journal.New(testhelper.SetupTestDB(t))
}

// ---------------------------------------------------------------------------
// Record tests
// ---------------------------------------------------------------------------

func TestRepo_Record_HappyPath(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("ephemeral")
	at := time.Now().UTC().Truncate(time.Microsecond)
	err := repo.Record(ctx, &domain.LookupResult{
		Word:      word,
		Meanings:  []domain.Meaning{{PartOfSpeech: "adjective", Glosses: []string{"x"}}},
		FetchedAt: at,
	})
	require.NoError(t, err)

	got, err := repo.List(ctx, journal.Filter{Word: word})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, word, got[0].Word)
	assert.True(t, got[0].HasMeanings)
	assert.False(t, got[0].HasAudio)
	assert.True(t, got[0].LookedUpAt.Equal(at), "looked_up_at: got %s, want %s", got[0].LookedUpAt, at)
}

func TestRepo_Record_EmptyWord(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	err := repo.Record(context.Background(), &domain.LookupResult{Word: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = repo.Record(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRepo_Record_ZeroFetchedAtUsesNow(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("zeal")
	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.Record(ctx, &domain.LookupResult{Word: word}))

	got, err := repo.List(ctx, journal.Filter{Word: word})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].LookedUpAt.After(before))
}

// ---------------------------------------------------------------------------
// List / Count tests
// ---------------------------------------------------------------------------

func TestRepo_List_NewestFirstAndLimit(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("abate")
	base := time.Now().Add(-time.Hour)
	for i := range 3 {
		testhelper.SeedJournalEntry(t, pool, word, base.Add(time.Duration(i)*time.Minute))
	}

	got, err := repo.List(ctx, journal.Filter{Word: word, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].LookedUpAt.After(got[1].LookedUpAt))
}

func TestRepo_List_WordIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("candor")
	testhelper.SeedJournalEntry(t, pool, word, time.Now())

	got, err := repo.List(ctx, journal.Filter{Word: "  " + strings.ToUpper(word) + " "})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRepo_List_Since(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("laconic")
	now := time.Now()
	testhelper.SeedJournalEntry(t, pool, word, now.Add(-48*time.Hour))
	recent := testhelper.SeedJournalEntry(t, pool, word, now.Add(-time.Minute))

	got, err := repo.List(ctx, journal.Filter{Word: word, Since: now.Add(-time.Hour)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	word := testhelper.UniqueWord("garrulous")
	n, err := repo.Count(ctx, word)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	testhelper.SeedJournalEntry(t, pool, word, time.Now())
	testhelper.SeedJournalEntry(t, pool, word, time.Now())

	n, err = repo.Count(ctx, word)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
