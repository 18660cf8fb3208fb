package handler

import (
	"net/http"

	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/stats"
)

// HandleGetStats returns the user's XP and level
// @Summary Get user stats
// @Description Returns the user's accumulated XP and current level
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 400 {object} ErrorResponse
// @Router /stats [get]
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		userStats, err := svc.GetStats(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get stats", "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, userStats)
	}
}
