package handler

import (
	"net/http"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/inventory"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
)

// InventoryResponse is the user's full inventory
type InventoryResponse struct {
	Items []domain.InventoryItem `json:"items"`
}

// HandleGetInventory returns all of the user's sacred items
// @Summary Get inventory
// @Description Returns every item the user has earned, newest first
// @Tags inventory
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		items, err := svc.ListItems(r.Context(), userID)
		if err != nil {
			log.Error("Failed to list inventory", "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{Items: items})
	}
}

// EquipItemRequest toggles an item's equipped state
type EquipItemRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Equipped *bool  `json:"equipped" validate:"required"`
}

// HandleEquipItem equips or unequips one of the user's items
// @Summary Equip or unequip an item
// @Description Sets the equipped state of one of the user's inventory items
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body EquipItemRequest true "Equip toggle"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/equip [post]
func HandleEquipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		if err := svc.SetEquipped(r.Context(), req.UserID, req.ItemID, *req.Equipped); err != nil {
			log.Error("Failed to set equip state", "error", err, "user_id", req.UserID, "item_id", req.ItemID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item updated"})
	}
}
