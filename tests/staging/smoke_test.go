//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

// Reserved user for smoke runs. Nothing is ever written for it, so reads
// exercise the default/empty paths.
const smokeUserID = "0a0a0a0a-0b0b-0c0c-0d0d-0e0e0e0e0e0e"

type statsResponse struct {
	UserID string `json:"user_id"`
	XP     int64  `json:"xp"`
	Level  int    `json:"level"`
}

func TestStatsDefaults(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/stats?user_id="+smokeUserID, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var stats statsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if stats.Level < 1 {
		t.Errorf("Expected level of at least 1, got %d", stats.Level)
	}
}

func TestJournalEntriesList(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/journal/entries?user_id="+smokeUserID, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var list struct {
		Entries []json.RawMessage `json:"entries"`
		Total   int               `json:"total"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if list.Entries == nil {
		t.Error("Expected entries array, got null")
	}
}

func TestInventoryList(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/inventory?user_id="+smokeUserID, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var inv struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &inv); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if inv.Items == nil {
		t.Error("Expected items array, got null")
	}
}

func TestJournalAnalytics(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/journal/analytics?user_id="+smokeUserID, nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

// Validation paths that must reject before any model call is made.

func TestGenerateRejectsEmptyEntry(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/quest/generate", map[string]string{"entry": ""})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestWizardChatRejectsEmptyHistory(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/wizard/chat", map[string]interface{}{
		"messages": []interface{}{},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestUnauthorizedWithoutKey(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/stats?user_id="+smokeUserID, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
