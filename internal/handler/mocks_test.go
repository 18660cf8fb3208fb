package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/journal"
)

// MockGenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, entryText string) (*domain.QuestResult, error) {
	args := m.Called(ctx, entryText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestResult), args.Error(1)
}

// MockJournalService
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) RecordQuest(ctx context.Context, userID, text string, result domain.QuestResult) (*journal.QuestRecord, error) {
	args := m.Called(ctx, userID, text, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journal.QuestRecord), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.JournalEntry, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Int(1), args.Error(2)
}

func (m *MockJournalService) GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetAnalytics(ctx context.Context, userID string) (*domain.JournalAnalytics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalAnalytics), args.Error(1)
}

// MockWizardService
type MockWizardService struct {
	mock.Mock
}

func (m *MockWizardService) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) SetEquipped(ctx context.Context, userID, itemID string, equipped bool) error {
	args := m.Called(ctx, userID, itemID, equipped)
	return args.Error(0)
}

// MockStatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) AwardQuestXP(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsService) GetStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}
