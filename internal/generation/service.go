package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/llm"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/metrics"
	"github.com/osse101/LoneWanderer_Go/internal/sanitize"
	"github.com/osse101/LoneWanderer_Go/internal/validation"
)

// Service defines the interface for quest generation
type Service interface {
	// Generate turns one journal entry into a quest and insight. The model is
	// called exactly once per invocation; transient upstream failures surface
	// as errors for the caller to retry.
	Generate(ctx context.Context, entryText string) (*domain.QuestResult, error)
}

// service implements the Service interface
type service struct {
	client llm.Client
}

// NewService creates a new generation service
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Generate(ctx context.Context, entryText string) (*domain.QuestResult, error) {
	log := logger.FromContext(ctx)

	if utf8.RuneCountInString(entryText) > MaxEntryLength {
		return nil, fmt.Errorf("%w: %d characters exceeds the %d limit",
			domain.ErrEntryTooLong, utf8.RuneCountInString(entryText), MaxEntryLength)
	}

	sanitized := sanitize.Text(entryText)
	if sanitized == "" {
		return nil, fmt.Errorf("%w: entry is empty", domain.ErrInvalidInput)
	}

	log.Debug(LogMsgGenerationStarted, "entry_length", utf8.RuneCountInString(sanitized))

	raw, err := s.client.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: questSystemPrompt},
			{Role: llm.RoleUser, Content: questUserPrompt(sanitized)},
		},
		MaxTokens:   QuestMaxTokens,
		Temperature: QuestTemperature,
		JSONMode:    true,
	})
	if err != nil {
		log.Error(LogMsgUpstreamFailed, "error", err)
		metrics.GenerationFailures.WithLabelValues(StageUpstream).Inc()
		return nil, err
	}

	extracted, err := ExtractJSONObject(raw)
	if err != nil {
		log.Warn(LogMsgExtractFailed, "output_length", len(raw))
		metrics.GenerationFailures.WithLabelValues(StageExtract).Inc()
		return nil, err
	}

	// Syntax and shape fail differently: garbage between the braces is a
	// parse failure, well-formed JSON of the wrong shape is a schema failure.
	if !json.Valid([]byte(extracted)) {
		log.Warn(LogMsgParseFailed, "output_length", len(raw))
		metrics.GenerationFailures.WithLabelValues(StageParse).Inc()
		return nil, fmt.Errorf("%w: extracted span is not valid JSON", domain.ErrGenerationParse)
	}

	if err := validation.ValidateQuestResult([]byte(extracted)); err != nil {
		log.Warn(LogMsgSchemaFailed, "error", err)
		metrics.GenerationFailures.WithLabelValues(StageSchema).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationSchema, err)
	}

	var result domain.QuestResult
	if err := json.Unmarshal([]byte(extracted), &result); err != nil {
		log.Warn(LogMsgParseFailed, "error", err)
		metrics.GenerationFailures.WithLabelValues(StageParse).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationParse, err)
	}

	metrics.QuestsGenerated.Inc()
	if result.IsIntrospection() {
		metrics.IntrospectionQuests.Inc()
	}

	log.Info(LogMsgGenerationComplete,
		"emotion", result.Quest.Emotion,
		"class", result.Quest.Class,
		"introspection", result.IsIntrospection(),
	)

	return &result, nil
}
