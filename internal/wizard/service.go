package wizard

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/llm"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/metrics"
	"github.com/osse101/LoneWanderer_Go/internal/sanitize"
)

// Service defines the interface for wizard chat
type Service interface {
	// Chat generates Eldrin's reply to a conversation. The last message must
	// come from the user; history order is preserved as given.
	Chat(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

// service implements the Service interface
type service struct {
	client llm.Client
}

// NewService creates a new wizard chat service
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	log := logger.FromContext(ctx)

	if err := validateMessages(messages); err != nil {
		return "", err
	}

	// The newest user message is interpolated into the prompt the same way a
	// journal entry is and gets the same cleanup. Copy first so the caller's
	// slice is left alone.
	history := make([]domain.ChatMessage, len(messages))
	copy(history, messages)
	last := len(history) - 1
	history[last].Content = sanitize.Text(history[last].Content)
	if history[last].Content == "" {
		return "", fmt.Errorf("%w: message %d is empty after sanitization", domain.ErrInvalidInput, last)
	}

	log.Debug(LogMsgChatStarted, "history_length", len(history))

	raw, err := s.client.Complete(ctx, llm.Request{
		Messages:    buildPrompt(history),
		MaxTokens:   ChatMaxTokens,
		Temperature: ChatTemperature,
	})
	if err != nil {
		log.Error(LogMsgChatFailed, "error", err)
		return "", err
	}

	reply, stripped := stripSpeakerLabel(raw)
	if stripped {
		log.Debug(LogMsgLabelStripped)
	}
	if reply == "" {
		return "", fmt.Errorf("%w: reply was empty after label strip", domain.ErrUpstreamUnavailable)
	}

	metrics.WizardChats.Inc()
	log.Info(LogMsgChatComplete, "reply_length", utf8.RuneCountInString(reply))

	return reply, nil
}

// validateMessages enforces the conversation contract before any model call
func validateMessages(messages []domain.ChatMessage) error {
	if len(messages) == 0 {
		return fmt.Errorf("%w: conversation is empty", domain.ErrInvalidInput)
	}

	for i, msg := range messages {
		if !domain.ValidRole(msg.Role) {
			return fmt.Errorf("%w: message %d has unknown role %q", domain.ErrInvalidInput, i, msg.Role)
		}
		if strings.TrimSpace(msg.Content) == "" {
			return fmt.Errorf("%w: message %d is empty", domain.ErrInvalidInput, i)
		}
		if utf8.RuneCountInString(msg.Content) > domain.MaxChatMessageLength {
			return fmt.Errorf("%w: message %d exceeds %d characters",
				domain.ErrInvalidInput, i, domain.MaxChatMessageLength)
		}
	}

	if messages[len(messages)-1].Role != domain.RoleUser {
		return fmt.Errorf("%w: last message must come from the user", domain.ErrInvalidInput)
	}

	return nil
}

// buildPrompt prepends the persona and replays the most recent history
func buildPrompt(messages []domain.ChatMessage) []llm.Message {
	if len(messages) > MaxHistoryMessages {
		messages = messages[len(messages)-MaxHistoryMessages:]
	}

	prompt := make([]llm.Message, 0, len(messages)+1)
	prompt = append(prompt, llm.Message{Role: llm.RoleSystem, Content: eldrinSystemPrompt})
	for _, msg := range messages {
		prompt = append(prompt, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return prompt
}

// stripSpeakerLabel drops a leading "Wizard:" or "Eldrin:" the model sometimes
// adds despite the persona prompt telling it not to.
func stripSpeakerLabel(reply string) (string, bool) {
	trimmed := strings.TrimSpace(reply)
	for _, label := range []string{"Wizard:", "Eldrin:"} {
		if strings.HasPrefix(trimmed, label) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, label)), true
		}
	}
	return trimmed, false
}
