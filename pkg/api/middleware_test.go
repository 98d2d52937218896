package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDGenerated(t *testing.T) {
	router, _ := setupTestRouter(t, Options{})

	w := doJSON(router, "GET", "/manage/health", nil)

	id := w.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDEchoed(t *testing.T) {
	router, _ := setupTestRouter(t, Options{})

	req := httptest.NewRequest("GET", "/manage/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCreateRateLimit(t *testing.T) {
	router, store := setupTestRouter(t, Options{CreateRateLimit: 0.001, CreateRateBurst: 2})

	assert.Equal(t, http.StatusCreated, doJSON(router, "POST", "/api/reservations", validBody()).Code)
	assert.Equal(t, http.StatusCreated, doJSON(router, "POST", "/api/reservations", validBody()).Code)

	w := doJSON(router, "POST", "/api/reservations", validBody())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 2, countRows(t, store))

	// admin endpoints are never limited
	for i := 0; i < 5; i++ {
		w = doJSON(router, "POST", "/api/admin/login", map[string]string{"password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestCreateRateLimitDisabledByDefault(t *testing.T) {
	router, _ := setupTestRouter(t, Options{})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusCreated, doJSON(router, "POST", "/api/reservations", validBody()).Code)
	}
}
