package handler

import (
	"net/http"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/generation"
	"github.com/osse101/LoneWanderer_Go/internal/journal"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/sanitize"
)

// GenerateQuestRequest is the body for quest generation. UserID is optional:
// anonymous generations are returned but never persisted.
type GenerateQuestRequest struct {
	Entry  string `json:"entry" validate:"required,max=5000"`
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// GenerateQuestResponse carries the generated quest plus, for known users,
// the persistence outcome.
type GenerateQuestResponse struct {
	Quest     domain.Quest      `json:"quest"`
	Insight   domain.Insight    `json:"insight"`
	EntryID   string            `json:"entry_id,omitempty"`
	XPAwarded int64             `json:"xp_awarded,omitempty"`
	Stats     *domain.UserStats `json:"stats,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}

// HandleGenerateQuest turns a journal entry into a quest and insight
// @Summary Generate a quest from a journal entry
// @Description Transforms a journal entry into a fantasy quest with a reflective insight. When user_id is given, the entry is saved, the item is added to the inventory, and XP is awarded.
// @Tags quest
// @Accept json
// @Produce json
// @Param request body GenerateQuestRequest true "Journal entry"
// @Success 200 {object} GenerateQuestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /quest/generate [post]
func HandleGenerateQuest(genSvc generation.Service, journalSvc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GenerateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate quest"); err != nil {
			return
		}

		result, err := genSvc.Generate(r.Context(), req.Entry)
		if err != nil {
			log.Error("Quest generation failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		resp := GenerateQuestResponse{
			Quest:   result.Quest,
			Insight: result.Insight,
		}

		if req.UserID != "" {
			// Store the same cleaned text the model saw. The logbook renders
			// stored entries, so raw markup must not reach the database.
			record, err := journalSvc.RecordQuest(r.Context(), req.UserID, sanitize.Text(req.Entry), *result)
			if err != nil {
				log.Error("Failed to record quest", "error", err, "user_id", req.UserID)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			if record.Entry != nil {
				resp.EntryID = record.Entry.ID
			}
			resp.XPAwarded = record.XPAwarded
			resp.Stats = record.Stats
			resp.Warning = record.Warning
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
