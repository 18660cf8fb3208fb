package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
)

const journalEntryColumns = `id, user_id, text, emotion, class, realm, realm_description,
	item, item_effect, quest, avatar_transformation,
	insight_summary, insight_emotional_pattern, insight_growth_advice, created_at`

// JournalRepository implements the journal repository for PostgreSQL
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(pool *pgxpool.Pool) repository.Journal {
	return &JournalRepository{pool: pool}
}

// CreateEntry inserts a finished entry and fills in its ID and CreatedAt
func (r *JournalRepository) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	userUUID, err := uuid.Parse(entry.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO journal_entries (
			user_id, text, emotion, class, realm, realm_description,
			item, item_effect, quest, avatar_transformation,
			insight_summary, insight_emotional_pattern, insight_growth_advice
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`,
		userUUID, entry.Text, entry.Emotion, entry.Class, entry.Realm, entry.RealmDescription,
		entry.Item, entry.ItemEffect, entry.Quest, entry.AvatarTransformation,
		entry.InsightSummary, entry.InsightEmotionalPattern, entry.InsightGrowthAdvice,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert journal entry: %v", domain.ErrDatabaseError, err)
	}

	return nil
}

// ListEntries returns a page of a user's entries, newest first, with the total count
func (r *JournalRepository) ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.JournalEntry, int, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`, userUUID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count journal entries: %v", domain.ErrDatabaseError, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+journalEntryColumns+`
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userUUID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to query journal entries: %v", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	entries, err := scanJournalEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// GetEntry returns a single entry owned by the user
func (r *JournalRepository) GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}
	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry id: %v", domain.ErrInvalidInput, err)
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+journalEntryColumns+`
		FROM journal_entries
		WHERE user_id = $1 AND id = $2`,
		userUUID, entryUUID,
	)

	entry, err := scanJournalEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: failed to get journal entry: %v", domain.ErrDatabaseError, err)
	}

	return entry, nil
}

// GetAnalytics aggregates emotion and class counts across a user's entries
func (r *JournalRepository) GetAnalytics(ctx context.Context, userID string) (*domain.JournalAnalytics, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	analytics := &domain.JournalAnalytics{
		Emotions: make(map[string]int),
		Classes:  make(map[string]int),
	}

	rows, err := r.pool.Query(ctx, `
		SELECT emotion, class FROM journal_entries WHERE user_id = $1`,
		userUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query analytics: %v", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var emotion, class string
		if err := rows.Scan(&emotion, &class); err != nil {
			return nil, fmt.Errorf("%w: failed to scan analytics row: %v", domain.ErrDatabaseError, err)
		}
		analytics.TotalQuests++
		analytics.Emotions[emotion]++
		analytics.Classes[class]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read analytics rows: %v", domain.ErrDatabaseError, err)
	}

	return analytics, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanJournalEntry scans one row in journalEntryColumns order
func scanJournalEntry(row rowScanner) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Text, &entry.Emotion, &entry.Class,
		&entry.Realm, &entry.RealmDescription, &entry.Item, &entry.ItemEffect,
		&entry.Quest, &entry.AvatarTransformation, &entry.InsightSummary,
		&entry.InsightEmotionalPattern, &entry.InsightGrowthAdvice, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func scanJournalEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan journal entry: %v", domain.ErrDatabaseError, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read journal entries: %v", domain.ErrDatabaseError, err)
	}
	return entries, nil
}
