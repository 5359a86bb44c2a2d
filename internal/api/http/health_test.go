package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/api/http"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := httpapi.NewHealthHandler("empire-dashboard", "2.0.0", nil)
	handler.RegisterRoutes(router)

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	var response httpapi.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %s", response.Status)
	}

	if response.Service != "empire-dashboard" {
		t.Errorf("expected service 'empire-dashboard', got %s", response.Service)
	}

	if response.Version != "2.0.0" {
		t.Errorf("expected version '2.0.0', got %s", response.Version)
	}

	if response.Store != "disabled" {
		t.Errorf("expected store 'disabled' without a store, got %s", response.Store)
	}
}

func TestHealthCheckReportsStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	router := gin.New()
	handler := httpapi.NewHealthHandler("empire-dashboard", "2.0.0", docstore.New(client))
	handler.RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response httpapi.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Store != "up" {
		t.Errorf("expected store 'up', got %s", response.Store)
	}

	mr.Close()

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Store != "down" {
		t.Errorf("expected store 'down' after closing redis, got %s", response.Store)
	}
}
