package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/herrhippopotamus/tradegate/config"
)

func TestInitializeApp_HappyPath(t *testing.T) {
	// Backup and override global config; the dialer is lazy so no backend
	// needs to be running for initialization to succeed.
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:     config.ServerConfig{Port: "8080"},
		Dataloader: config.DataloaderConfig{Host: "127.0.0.1", Port: 65000},
	}

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	// Liveness must pass without any backend
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	// Call cleanup and ensure it doesn't panic
	cleanup()
}

func TestInitializeApp_RoutesRegistered(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:     config.ServerConfig{Port: "8080"},
		Dataloader: config.DataloaderConfig{Host: "127.0.0.1", Port: 65000},
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	t.Cleanup(cleanup)

	// An unknown route must 404 while a known one must not; this guards
	// against route registration regressions without needing a backend.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route status=%d", w.Code)
	}

	// /portfolio without id fails validation before any backend call.
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/portfolio", nil))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("portfolio without id status=%d", w2.Code)
	}
}
