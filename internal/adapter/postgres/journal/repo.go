// Package journal stores which words were looked up, and whether each
// lookup field was found, in PostgreSQL.
package journal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/vocab-helper/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-helper/internal/domain"
)

const (
	table = "lookup_journal"

	defaultLimit = 20
	maxLimit     = 500
)

var columns = []string{"id", "word", "has_meanings", "has_audio", "looked_up_at"}

// Filter narrows List.
type Filter struct {
	// Word matches case-insensitively. Empty means every word.
	Word string
	// Since drops entries looked up before it. Zero means no bound.
	Since time.Time
	// Limit defaults to 20 and is clamped to 500.
	Limit int
}

func (f *Filter) normalize() {
	f.Word = domain.NormalizeText(f.Word)
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}

// Repo persists journal entries.
type Repo struct {
	q  postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a journal repository on top of a pool or transaction.
func New(q postgres.Querier) *Repo {
	return &Repo{
		q:  q,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Record stores a summary of a settled lookup.
func (r *Repo) Record(ctx context.Context, result *domain.LookupResult) error {
	if result == nil || domain.CleanWord(result.Word) == "" {
		return domain.NewValidationError("word", "required")
	}

	entry := domain.NewJournalEntry(result)
	if entry.LookedUpAt.IsZero() {
		entry.LookedUpAt = time.Now()
	}

	query, args, err := r.sb.
		Insert(table).
		Columns(columns...).
		Values(entry.ID, entry.Word, entry.HasMeanings, entry.HasAudio, entry.LookedUpAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("journal: build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, entry.Word)
	}

	return nil
}

// List returns entries newest first.
func (r *Repo) List(ctx context.Context, filter Filter) ([]domain.JournalEntry, error) {
	filter.normalize()

	builder := r.sb.
		Select(columns...).
		From(table).
		OrderBy("looked_up_at DESC", "id").
		Limit(uint64(filter.Limit))

	if filter.Word != "" {
		builder = builder.Where(sq.Eq{"lower(word)": filter.Word})
	}
	if !filter.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"looked_up_at": filter.Since.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("journal: build select: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, filter.Limit)
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(&e.ID, &e.Word, &e.HasMeanings, &e.HasAudio, &e.LookedUpAt); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: rows: %w", err)
	}

	return entries, nil
}

// Count returns how many times word has been looked up.
func (r *Repo) Count(ctx context.Context, word string) (int, error) {
	query, args, err := r.sb.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"lower(word)": domain.NormalizeText(word)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("journal: build count: %w", err)
	}

	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, table, word)
	}
	return n, nil
}
