package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/mocks"
)

type fixedStats struct{ mods, bases int }

func (s fixedStats) ModCount() int      { return s.mods }
func (s fixedStats) ItemBaseCount() int { return s.bases }

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Catalog Loaded - Success", func(t *testing.T) {
		svc := mocks.NewMockService(t)
		svc.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(svc).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Catalog Empty", func(t *testing.T) {
		svc := mocks.NewMockService(t)
		svc.On("CheckHealth", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(svc).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
	})

	t.Run("Probe has a deadline", func(t *testing.T) {
		svc := mocks.NewMockService(t)
		svc.On("CheckHealth", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(svc).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"configured", "1.4.2", "1.4.2"},
		{"empty falls back to dev", "", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleVersion(tt.version, fixedStats{mods: 12, bases: 3}).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var info VersionInfo
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
			assert.Equal(t, tt.want, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Equal(t, 12, info.Mods)
			assert.Equal(t, 3, info.ItemBases)
		})
	}
}
