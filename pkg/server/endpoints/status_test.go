package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexServesForm(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `action="/submit"`)
	assert.Contains(t, w.Body.String(), `action="/login"`)
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		healthStore := NewMockHealthStore()
		healthStore.On("CheckConnectivity").Return(nil)

		s := newTestServer(t, testServerOptions{health: healthStore})

		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"database":"ok"}`, w.Body.String())
	})

	t.Run("database unreachable", func(t *testing.T) {
		healthStore := NewMockHealthStore()
		healthStore.On("CheckConnectivity").Return(errors.New("dial tcp: connection refused"))

		s := newTestServer(t, testServerOptions{health: healthStore})

		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"ok":false,"database":"unreachable"}`, w.Body.String())
	})
}
