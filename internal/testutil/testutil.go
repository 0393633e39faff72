// Package testutil wires the package globals (database, blob storage) to
// throwaway per-test instances so handler tests run without external
// infrastructure.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lassehoutenbos/PartManager/internal/repositories"
	"github.com/Lassehoutenbos/PartManager/internal/storage"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB points repositories.DB at an isolated SQLite database for the
// duration of one test. Foreign keys are switched on so the cascade and
// set-null delete rules behave like the production Postgres schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "partmanager_test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	prev := repositories.DB
	repositories.DB = db

	t.Cleanup(func() {
		repositories.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupStorage points repositories.Files at a disk store rooted in a
// temporary directory.
func SetupStorage(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}

	prev := repositories.Files
	repositories.Files = store
	t.Cleanup(func() { repositories.Files = prev })

	return store
}

// DoRequest executes a JSON request against the handler under test.
func DoRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody io.Reader = bytes.NewBuffer(nil)
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DoUpload executes a multipart upload with a single file plus extra form
// fields. An empty filename sends no file part at all.
func DoUpload(t *testing.T, h http.Handler, path, filename, content string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		io.Copy(part, strings.NewReader(content))
	}
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// ParseResponse decodes a JSON object response body.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return result
}

// ParseListResponse decodes a JSON array response body.
func ParseListResponse(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var result []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return result
}
