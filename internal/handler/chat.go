package handler

import (
	"net/http"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/wizard"
)

// ChatMessageRequest is one turn of client-supplied conversation history
type ChatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=500"`
}

// WizardChatRequest is the body for wizard chat
type WizardChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" validate:"required,min=1,max=50,dive"`
}

// WizardChatResponse carries Eldrin's reply
type WizardChatResponse struct {
	Reply string `json:"reply"`
}

// HandleWizardChat generates Eldrin's next reply in a conversation
// @Summary Chat with Eldrin the Wise
// @Description Sends the conversation history and returns the wizard's next reply. The last message must come from the user.
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body WizardChatRequest true "Conversation history"
// @Success 200 {object} WizardChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wizard/chat [post]
func HandleWizardChat(svc wizard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req WizardChatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Wizard chat"); err != nil {
			return
		}

		messages := make([]domain.ChatMessage, len(req.Messages))
		for i, m := range req.Messages {
			messages[i] = domain.ChatMessage{Role: m.Role, Content: m.Content}
		}

		reply, err := svc.Chat(r.Context(), messages)
		if err != nil {
			log.Error("Wizard chat failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, WizardChatResponse{Reply: reply})
	}
}
