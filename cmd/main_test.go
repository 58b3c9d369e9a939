package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodbridge-service/internal/config"
	"foodbridge-service/internal/middleware"
)

func TestInitFoodServiceWithoutCredential(t *testing.T) {
	cfg := &config.Config{GeminiAPIKey: config.PlaceholderAPIKey}

	service, closeFn := initFoodService(context.Background(), cfg, zap.NewNop())
	defer closeFn()

	assert.False(t, service.HasCredential())
	assert.Empty(t, service.Model())
	assert.NotNil(t, service.DemoResponse())
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:           "5001",
		MaxFileSizeMB:  10,
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
	}
	service, closeFn := initFoodService(context.Background(), cfg, zap.NewNop())
	defer closeFn()

	router := setupRouter(cfg, service, zap.NewNop())
	assert.Equal(t, int64(10<<20), router.MaxMultipartMemory)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Backend is working!"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	routes := make(map[string]bool)
	for _, route := range router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, expected := range []string{"GET /ping", "GET /models", "POST /analyze", "GET /metrics"} {
		assert.True(t, routes[expected], expected)
	}
}
