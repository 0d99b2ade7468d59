package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescoach-api/internal/provider"
)

func TestHealthReportsProviderAvailability(t *testing.T) {
	ready := &mockProvider{name: "gemini", available: true}
	unready := &mockProvider{name: "azure-openai", available: false}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	Health([]provider.Provider{ready, unready})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Providers, 2)
	assert.True(t, resp.Providers["gemini"].Available)
	assert.Empty(t, resp.Providers["gemini"].Reason)
	assert.False(t, resp.Providers["azure-openai"].Available)
	assert.Equal(t, "incomplete configuration", resp.Providers["azure-openai"].Reason)
}
