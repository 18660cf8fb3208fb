package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

const testItemID = "99999999-8888-7777-6666-555555555555"

func TestHandleGetInventory(t *testing.T) {
	t.Run("returns the user's items", func(t *testing.T) {
		svc := new(MockInventoryService)
		svc.On("ListItems", mock.Anything, testUserID).Return([]domain.InventoryItem{
			{ID: testItemID, ItemName: "Whispering Compass", IsEquipped: true},
		}, nil)

		rec := getRequest(HandleGetInventory(svc), "/api/v1/inventory?user_id="+testUserID)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp InventoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Whispering Compass", resp.Items[0].ItemName)
		assert.True(t, resp.Items[0].IsEquipped)
	})

	t.Run("missing user_id", func(t *testing.T) {
		rec := getRequest(HandleGetInventory(new(MockInventoryService)), "/api/v1/inventory")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleEquipItem(t *testing.T) {
	equipped := true

	t.Run("equips the item", func(t *testing.T) {
		svc := new(MockInventoryService)
		svc.On("SetEquipped", mock.Anything, testUserID, testItemID, true).Return(nil)

		rec := postJSON(t, HandleEquipItem(svc), "/api/v1/inventory/equip",
			EquipItemRequest{UserID: testUserID, ItemID: testItemID, Equipped: &equipped})

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing equipped flag fails validation", func(t *testing.T) {
		rec := postJSON(t, HandleEquipItem(new(MockInventoryService)), "/api/v1/inventory/equip",
			map[string]string{"user_id": testUserID, "item_id": testItemID})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown item maps to not found", func(t *testing.T) {
		svc := new(MockInventoryService)
		svc.On("SetEquipped", mock.Anything, testUserID, testItemID, true).Return(domain.ErrItemNotFound)

		rec := postJSON(t, HandleEquipItem(svc), "/api/v1/inventory/equip",
			EquipItemRequest{UserID: testUserID, ItemID: testItemID, Equipped: &equipped})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgItemNotFoundError)
	})
}

func TestHandleGetStats(t *testing.T) {
	t.Run("returns stats", func(t *testing.T) {
		svc := new(MockStatsService)
		svc.On("GetStats", mock.Anything, testUserID).Return(
			&domain.UserStats{UserID: testUserID, XP: 250, Level: 3}, nil)

		rec := getRequest(HandleGetStats(svc), "/api/v1/stats?user_id="+testUserID)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.UserStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(250), resp.XP)
		assert.Equal(t, 3, resp.Level)
	})

	t.Run("missing user_id", func(t *testing.T) {
		rec := getRequest(HandleGetStats(new(MockStatsService)), "/api/v1/stats")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
