package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Lassehoutenbos/PartManager/internal/testutil"
)

// setupAPI gives each test a fresh database, a fresh blob store and a mux
// with the same route set the production router registers.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()
	testutil.SetupTestDB(t)
	testutil.SetupStorage(t)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/parts", GetParts)
	mux.HandleFunc("GET /api/parts/{id}", GetPart)
	mux.HandleFunc("POST /api/parts", CreatePart)
	mux.HandleFunc("PUT /api/parts/{id}", UpdatePart)
	mux.HandleFunc("DELETE /api/parts/{id}", DeletePart)

	mux.HandleFunc("GET /api/drawers", GetDrawers)
	mux.HandleFunc("GET /api/drawers/{id}", GetDrawer)
	mux.HandleFunc("POST /api/drawers", CreateDrawer)
	mux.HandleFunc("PUT /api/drawers/{id}", UpdateDrawer)
	mux.HandleFunc("DELETE /api/drawers/{id}", DeleteDrawer)

	mux.HandleFunc("GET /api/categories", GetCategories)
	mux.HandleFunc("GET /api/categories/{id}", GetCategory)
	mux.HandleFunc("POST /api/categories", CreateCategory)
	mux.HandleFunc("PUT /api/categories/{id}", UpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", DeleteCategory)

	mux.HandleFunc("GET /api/attachments/part/{partId}", GetPartAttachments)
	mux.HandleFunc("POST /api/attachments/part/{partId}/upload", UploadAttachment)
	mux.HandleFunc("GET /api/attachments/download/{fileName}", DownloadAttachment)
	mux.HandleFunc("DELETE /api/attachments/{id}", DeleteAttachment)

	mux.HandleFunc("GET /api/nfc/scan/{tagId}", ScanNfcTag)
	mux.HandleFunc("POST /api/nfc/write/drawer/{drawerId}", WriteDrawerNfcTag)
	mux.HandleFunc("POST /api/nfc/write/part/{partId}", WritePartNfcTag)
	mux.HandleFunc("GET /api/qr/scan/{code}", ScanQrCode)
	mux.HandleFunc("POST /api/qr/generate/drawer/{drawerId}", GenerateDrawerQrCode)
	mux.HandleFunc("POST /api/qr/generate/part/{partId}", GeneratePartQrCode)

	return mux
}

func createTestPart(t *testing.T, h http.Handler, name string, extra map[string]any) map[string]any {
	t.Helper()

	body := map[string]any{"name": name, "quantity": 10}
	for k, v := range extra {
		body[k] = v
	}

	w := testutil.DoRequest(h, http.MethodPost, "/api/parts", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating part, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(t, w)
}

func createTestDrawer(t *testing.T, h http.Handler, name string, extra map[string]any) map[string]any {
	t.Helper()

	body := map[string]any{"name": name, "gridX": 1, "gridY": 1, "gridWidth": 1, "gridHeight": 1}
	for k, v := range extra {
		body[k] = v
	}

	w := testutil.DoRequest(h, http.MethodPost, "/api/drawers", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating drawer, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(t, w)
}

func createTestCategory(t *testing.T, h http.Handler, name string) map[string]any {
	t.Helper()

	w := testutil.DoRequest(h, http.MethodPost, "/api/categories", map[string]any{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating category, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(t, w)
}

func entityID(t *testing.T, obj map[string]any) int {
	t.Helper()

	id, ok := obj["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("Expected positive numeric id, got %v", obj["id"])
	}
	return int(id)
}

func parseTimestamp(t *testing.T, obj map[string]any, field string) time.Time {
	t.Helper()

	s, ok := obj[field].(string)
	if !ok {
		t.Fatalf("Expected %s to be a string, got %v", field, obj[field])
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("Failed to parse %s %q: %v", field, s, err)
	}
	return ts
}

func getByID(t *testing.T, h http.Handler, collection string, id int) map[string]any {
	t.Helper()

	w := testutil.DoRequest(h, http.MethodGet, fmt.Sprintf("/api/%s/%d", collection, id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 fetching %s/%d, got %d: %s", collection, id, w.Code, w.Body.String())
	}
	return testutil.ParseResponse(t, w)
}
