package settings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/internal/settings/repositoryimpl"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	settings.NewServer(repositoryimpl.NewJSONRepository(storage.NewMemoryStorage())).Routes(r)
	return r
}

func TestGetReturnsDefaults(t *testing.T) {
	r := newRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil).WithContext(context.Background()))

	require.Equal(t, http.StatusOK, rec.Code)
	var got settings.SystemSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, settings.Default(), got)
}

func TestPutThenGet(t *testing.T) {
	r := newRouter()

	body := `{"api_key":"sk-test","show_demo_banner":false,"maintenance_mode":true}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got settings.SystemSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sk-test", got.APIKey)
	assert.False(t, got.ShowDemoBanner)
	assert.True(t, got.MaintenanceMode)
}

func TestPutRejectsInvalidBody(t *testing.T) {
	r := newRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader("{broken")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
