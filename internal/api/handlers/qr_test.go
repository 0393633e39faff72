package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Lassehoutenbos/PartManager/internal/testutil"
)

func generateQrCode(t *testing.T, h http.Handler, target string, id int) string {
	t.Helper()

	w := testutil.DoRequest(h, http.MethodPost, fmt.Sprintf("/api/qr/generate/%s/%d", target, id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 generating QR code, got %d: %s", w.Code, w.Body.String())
	}
	code, ok := testutil.ParseResponse(t, w)["qrCode"].(string)
	if !ok || code == "" {
		t.Fatalf("Expected qrCode in response, got %s", w.Body.String())
	}
	return code
}

func TestGenerateDrawerQrCode(t *testing.T) {
	h := setupAPI(t)

	drawerID := entityID(t, createTestDrawer(t, h, "Bin Q", nil))
	code := generateQrCode(t, h, "drawer", drawerID)

	if !strings.HasPrefix(code, fmt.Sprintf("DRAWER-%d-", drawerID)) {
		t.Errorf("Expected DRAWER-%d-<hex> code, got %q", drawerID, code)
	}
	if suffix := code[strings.LastIndex(code, "-")+1:]; len(suffix) != 32 {
		t.Errorf("Expected 32 hex chars, got %q", suffix)
	}

	w := testutil.DoRequest(h, http.MethodGet, "/api/qr/scan/"+code, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 scanning generated code, got %d", w.Code)
	}
	result := testutil.ParseResponse(t, w)
	if result["type"] != "drawer" {
		t.Errorf("Expected type 'drawer', got %v", result["type"])
	}
	data, ok := result["data"].(map[string]any)
	if !ok || data["name"] != "Bin Q" {
		t.Errorf("Expected drawer 'Bin Q' in scan payload, got %v", result["data"])
	}
}

func TestGeneratePartQrCode(t *testing.T) {
	h := setupAPI(t)

	partID := entityID(t, createTestPart(t, h, "MCP2515", nil))
	code := generateQrCode(t, h, "part", partID)

	if !strings.HasPrefix(code, fmt.Sprintf("PART-%d-", partID)) {
		t.Errorf("Expected PART-%d-<hex> code, got %q", partID, code)
	}

	w := testutil.DoRequest(h, http.MethodGet, "/api/qr/scan/"+code, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if result := testutil.ParseResponse(t, w); result["type"] != "part" {
		t.Errorf("Expected type 'part', got %v", result["type"])
	}
}

func TestRegenerateQrCodeInvalidatesOld(t *testing.T) {
	h := setupAPI(t)

	drawerID := entityID(t, createTestDrawer(t, h, "Bin R", nil))
	first := generateQrCode(t, h, "drawer", drawerID)
	second := generateQrCode(t, h, "drawer", drawerID)

	if first == second {
		t.Fatalf("Expected a fresh code on regeneration, got %q twice", first)
	}
	if w := testutil.DoRequest(h, http.MethodGet, "/api/qr/scan/"+first, nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected old code invalidated, got %d", w.Code)
	}
	if w := testutil.DoRequest(h, http.MethodGet, "/api/qr/scan/"+second, nil); w.Code != http.StatusOK {
		t.Errorf("Expected new code to resolve, got %d", w.Code)
	}
}

func TestGenerateQrCodeMissingTarget(t *testing.T) {
	h := setupAPI(t)

	w := testutil.DoRequest(h, http.MethodPost, "/api/qr/generate/drawer/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing drawer, got %d", w.Code)
	}
	w = testutil.DoRequest(h, http.MethodPost, "/api/qr/generate/part/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing part, got %d", w.Code)
	}
}

func TestQrScanUnknownCode(t *testing.T) {
	h := setupAPI(t)

	w := testutil.DoRequest(h, http.MethodGet, "/api/qr/scan/DRAWER-1-deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if msg := testutil.ParseResponse(t, w)["message"]; msg != "QR code not found" {
		t.Errorf("Expected 'QR code not found', got %v", msg)
	}
}
