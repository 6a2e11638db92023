package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/bootstrap"
	"cvbuilder/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	return config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5000"},
		DataFile:        filepath.Join(dir, "cv_data.yaml"),
		PhotosDir:       filepath.Join(dir, "photos"),
		DefaultPhoto:    filepath.Join(dir, "default.png"),
		FontFile:        filepath.Join(dir, "absent.ttf"),
	}
}

func TestBuildWiresSaveDataAndGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	router := app.Router

	// Save a document.
	const text = "header:\n  name: Wired Person\n  role: Integrator\n"
	body, err := json.Marshal(gin.H{"yaml": text})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/save", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// Read it back.
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
	if data.YAML != text {
		t.Fatalf("expected saved document back, got %q", data.YAML)
	}

	// Generate a PDF from the stored document.
	reqGen := httptest.NewRequest(http.MethodPost, "/generate", nil)
	respGen := httptest.NewRecorder()
	router.ServeHTTP(respGen, reqGen)

	if respGen.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respGen.Code, respGen.Body.String())
	}
	if ct := respGen.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if !bytes.HasPrefix(respGen.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF body")
	}

	// Health.
	reqHealth := httptest.NewRequest(http.MethodGet, "/health", nil)
	respHealth := httptest.NewRecorder()
	router.ServeHTTP(respHealth, reqHealth)
	if respHealth.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respHealth.Code)
	}
}

func TestBuildPersistsAcrossRestarts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	const text = "header:\n  name: Durable Person\n  role: Keeper\n"
	body, err := json.Marshal(gin.H{"yaml": text})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/save", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// A fresh build over the same data file sees the saved document.
	rebuilt, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap rebuild: %v", err)
	}
	reqGet := httptest.NewRequest(http.MethodGet, "/data", nil)
	respGet := httptest.NewRecorder()
	rebuilt.Router.ServeHTTP(respGet, reqGet)

	var data struct {
		YAML string `json:"yaml"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&data); err != nil {
		t.Fatalf("decode data response: %v", err)
	}
	if data.YAML != text {
		t.Fatalf("expected document to survive restart, got %q", data.YAML)
	}
}
