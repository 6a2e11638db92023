package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/documents"
)

const sampleDocument = "header:\n  name: Ada Lovelace\n  role: Analyst\n"

func newDocumentsRouter(t *testing.T) (*gin.Engine, *documents.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &documents.MemoryRepo{}
	handler := documents.NewHandler(&documents.Service{Repo: repo})

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))
	return router, repo
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type statusBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func decodeStatus(t *testing.T, resp *httptest.ResponseRecorder) statusBody {
	t.Helper()

	var out statusBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSaveThenDataRoundTrips(t *testing.T) {
	router, _ := newDocumentsRouter(t)

	resp := postJSON(t, router, "/save", gin.H{"yaml": sampleDocument})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if out := decodeStatus(t, resp); !out.OK || out.Error != "" {
		t.Fatalf("expected ok save, got %+v", out)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/data", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var data struct {
		YAML string `json:"yaml"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&data); err != nil {
		t.Fatalf("decode data response: %v", err)
	}
	if data.YAML != sampleDocument {
		t.Fatalf("expected exact round trip, got %q", data.YAML)
	}
}

func TestDataServesStarterWhenStoreEmpty(t *testing.T) {
	router, _ := newDocumentsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var data struct {
		YAML string `json:"yaml"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		t.Fatalf("decode data response: %v", err)
	}
	if !strings.Contains(data.YAML, "Jordan Avery") {
		t.Fatalf("expected starter document, got %q", data.YAML)
	}
}

func TestSaveRejectsBrokenDocument(t *testing.T) {
	router, repo := newDocumentsRouter(t)

	resp := postJSON(t, router, "/save", gin.H{"yaml": "header: [unclosed"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	out := decodeStatus(t, resp)
	if out.OK {
		t.Fatalf("expected ok=false, got %+v", out)
	}
	if !strings.Contains(out.Error, "yaml") {
		t.Fatalf("expected parser diagnostic, got %q", out.Error)
	}

	if _, err := repo.Load(context.Background()); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected store untouched after refused save, got %v", err)
	}
}

func TestValidateReportsProblemsWithStatus200(t *testing.T) {
	router, repo := newDocumentsRouter(t)

	resp := postJSON(t, router, "/validate", gin.H{"yaml": "header: [unclosed"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for invalid document, got %d", resp.Code)
	}
	out := decodeStatus(t, resp)
	if out.OK || out.Error == "" {
		t.Fatalf("expected diagnostic with ok=false, got %+v", out)
	}

	if _, err := repo.Load(context.Background()); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected validate to never persist, got %v", err)
	}

	respOK := postJSON(t, router, "/validate", gin.H{"yaml": sampleDocument})
	if respOK.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respOK.Code)
	}
	if out := decodeStatus(t, respOK); !out.OK || out.Error != "" {
		t.Fatalf("expected clean validation, got %+v", out)
	}
}

func TestSaveRejectsMalformedRequestBody(t *testing.T) {
	router, _ := newDocumentsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if out := decodeStatus(t, resp); out.OK {
		t.Fatalf("expected ok=false, got %+v", out)
	}
}
