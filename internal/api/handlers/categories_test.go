package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Lassehoutenbos/PartManager/internal/testutil"
)

func TestCategoryCRUD(t *testing.T) {
	h := setupAPI(t)

	category := createTestCategory(t, h, "Capacitors")
	id := entityID(t, category)

	w := testutil.DoRequest(h, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), map[string]any{
		"id":          id,
		"name":        "Ceramic capacitors",
		"description": "MLCC only",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
	}

	fetched := getByID(t, h, "categories", id)
	if fetched["name"] != "Ceramic capacitors" {
		t.Errorf("Expected updated name, got %v", fetched["name"])
	}
	if fetched["description"] != "MLCC only" {
		t.Errorf("Expected description, got %v", fetched["description"])
	}

	w = testutil.DoRequest(h, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	w = testutil.DoRequest(h, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", w.Code)
	}
}

func TestCategoryNamesMayRepeat(t *testing.T) {
	h := setupAPI(t)

	createTestCategory(t, h, "Misc")
	createTestCategory(t, h, "Misc")

	w := testutil.DoRequest(h, http.MethodGet, "/api/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if categories := testutil.ParseListResponse(t, w); len(categories) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(categories))
	}
}

func TestDeleteCategoryNullifiesParts(t *testing.T) {
	h := setupAPI(t)

	categoryID := entityID(t, createTestCategory(t, h, "Transistors"))
	partID := entityID(t, createTestPart(t, h, "2N2222", map[string]any{"categoryId": categoryID}))

	w := testutil.DoRequest(h, http.MethodDelete, fmt.Sprintf("/api/categories/%d", categoryID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}

	part := getByID(t, h, "parts", partID)
	if part["categoryId"] != nil {
		t.Errorf("Expected categoryId nulled after category delete, got %v", part["categoryId"])
	}
}
