package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paperforge/paperforge-backend/internal/config"
	"github.com/paperforge/paperforge-backend/internal/handler"
	"github.com/paperforge/paperforge-backend/internal/response"
	"github.com/paperforge/paperforge-backend/internal/router"
	"github.com/paperforge/paperforge-backend/internal/service"
	"github.com/paperforge/paperforge-backend/internal/validator"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	validator.Setup()

	cfg := &config.Config{
		GinMode:              "test",
		PageSizeName:         "A4",
		Page:                 config.PageSize{Width: 595.28, Height: 841.89},
		Margins:              config.Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		ColumnGap:            20,
		FontFamily:           "Helvetica",
		Sizes:                config.FontSizes{Title: 18, Header: 14, SubHeader: 12, Normal: 10, Small: 8},
		AssetDir:             t.TempDir(),
		MaxUploadBytes:       1 << 20,
		MaxBodyBytes:         1 << 20,
		MaxConcurrentRenders: 2,
	}
	log := zerolog.Nop()

	handlers := &router.Handlers{
		Paper: handler.NewPaperHandler(service.NewPaperService(cfg, log)),
		Media: handler.NewMediaHandler(service.NewMediaService(cfg)),
	}
	return router.SetupRouter(handlers, cfg)
}

func TestGeneratePaperOK(t *testing.T) {
	r := testRouter(t)

	body := `{
		"title": "Sample Paper",
		"questions": [
			{"type": "mcq", "text": "2+2=?", "options": ["3","4","5","6"], "correctOption": 1, "solution": "Basic addition."}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "question-paper.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("response body is not a PDF stream")
	}
}

func TestGeneratePaperEmptyQuestionsAllowed(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", strings.NewReader(`{"questions": []}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGeneratePaperMissingQuestions(t *testing.T) {
	r := testRouter(t)

	for _, body := range []string{`{}`, `{"title": "No questions"}`, `{"questions": null}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}

		var resp response.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error envelope: %v", err)
		}
		if resp.Error == nil || resp.Error.Code != response.ErrValidation {
			t.Fatalf("body %s: error = %+v, want %s", body, resp.Error, response.ErrValidation)
		}
	}
}

func TestGeneratePaperMalformedJSON(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadMediaRequiresFile(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
