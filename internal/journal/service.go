package journal

import (
	"context"
	"fmt"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/metrics"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
	"github.com/osse101/LoneWanderer_Go/internal/stats"
)

// QuestRecord is the persistence outcome for one generated quest. Warning is
// set when some part of the record could not be written; the generation
// itself is never lost over it.
type QuestRecord struct {
	Entry     *domain.JournalEntry
	Stats     *domain.UserStats
	XPAwarded int64
	Warning   string
}

// Service defines the interface for journal operations
type Service interface {
	// RecordQuest persists a generated quest: the journal entry, the earned
	// item, and the XP award. Storage failures degrade to a warning on the
	// returned record rather than an error.
	RecordQuest(ctx context.Context, userID, text string, result domain.QuestResult) (*QuestRecord, error)

	// ListEntries returns a page of the user's entries, newest first, with
	// the total count. Limit and offset are clamped to sane bounds.
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.JournalEntry, int, error)

	// GetEntry returns one of the user's entries.
	GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error)

	// GetAnalytics aggregates the user's emotion and class history.
	GetAnalytics(ctx context.Context, userID string) (*domain.JournalAnalytics, error)
}

// service implements the Service interface
type service struct {
	journalRepo   repository.Journal
	inventoryRepo repository.Inventory
	statsService  stats.Service
}

// NewService creates a new journal service
func NewService(journalRepo repository.Journal, inventoryRepo repository.Inventory, statsService stats.Service) Service {
	return &service{
		journalRepo:   journalRepo,
		inventoryRepo: inventoryRepo,
		statsService:  statsService,
	}
}

func (s *service) RecordQuest(ctx context.Context, userID, text string, result domain.QuestResult) (*QuestRecord, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	record := &QuestRecord{}

	entry := domain.NewJournalEntry(userID, text, result)
	if err := s.journalRepo.CreateEntry(ctx, &entry); err != nil {
		log.Error(LogMsgEntrySaveFailed, "error", err, "user_id", userID)
		metrics.PersistenceWarnings.Inc()
		record.Warning = WarningEntryNotSaved
		return record, nil
	}
	record.Entry = &entry

	item := &domain.InventoryItem{
		UserID:         userID,
		JournalEntryID: entry.ID,
		ItemName:       result.Quest.Item,
		ItemEffect:     result.Quest.ItemEffect,
	}
	if err := s.inventoryRepo.AddItem(ctx, item); err != nil {
		log.Error(LogMsgItemSaveFailed, "error", err, "user_id", userID, "entry_id", entry.ID)
		metrics.PersistenceWarnings.Inc()
		record.Warning = WarningItemNotSaved
		return record, nil
	}

	userStats, err := s.statsService.AwardQuestXP(ctx, userID)
	if err != nil {
		log.Error(LogMsgXPAwardFailed, "error", err, "user_id", userID)
		metrics.PersistenceWarnings.Inc()
		record.Warning = WarningXPNotAwarded
		return record, nil
	}
	record.Stats = userStats
	record.XPAwarded = domain.QuestCompletionXP

	log.Info(LogMsgQuestRecorded,
		"user_id", userID,
		"entry_id", entry.ID,
		"item", item.ItemName,
		"xp", userStats.XP,
		"level", userStats.Level,
	)

	return record, nil
}

func (s *service) ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.JournalEntry, int, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.journalRepo.ListEntries(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, total, nil
}

func (s *service) GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry ID is required", domain.ErrInvalidInput)
	}
	return s.journalRepo.GetEntry(ctx, userID, entryID)
}

func (s *service) GetAnalytics(ctx context.Context, userID string) (*domain.JournalAnalytics, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	return s.journalRepo.GetAnalytics(ctx, userID)
}
