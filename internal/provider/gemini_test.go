package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescoach-api/internal/common/config"
	commonerrors "salescoach-api/internal/common/errors"
	"salescoach-api/internal/common/logger"
	"salescoach-api/pkg/coach"
)

func newTestGemini(t *testing.T, baseURL string) *GeminiProvider {
	return NewGeminiProvider(config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.5-flash",
		Timeout: 5000,
	}, config.RetryConfig{MaxRetries: 0, InitialBackoff: 10}, logger.NewTestLogger(t))
}

// geminiText wraps model output text into a generateContent response body.
func geminiText(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"role":  "model",
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGeminiGenerateCoachInsights(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiText(`[{"type":"Upsell","title":"T","description":"D","prompt":"P"}]`)))
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	insights, err := p.GenerateCoachInsights(context.Background(), []coach.SalesRecord{
		{AccountName: "A", Brand: "X", QtyHL: 5},
	})

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, coach.InsightUpsell, insights[0].Type)
	assert.Equal(t, "T", insights[0].Title)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
	require.Len(t, gotBody.Contents, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "Account: A, Brand: X, Quantity: 5 HLs")
}

func TestGeminiMissingAPIKey(t *testing.T) {
	p := NewGeminiProvider(config.GeminiConfig{Model: "gemini-2.5-flash"},
		config.RetryConfig{}, logger.NewNoOpLogger())

	for name, call := range map[string]func() error{
		"insights": func() error { _, err := p.GenerateCoachInsights(context.Background(), nil); return err },
		"chat":     func() error { _, err := p.ContinueChat(context.Background(), nil, nil); return err },
		"prep": func() error {
			_, err := p.GenerateMeetingPrep(context.Background(), coach.Meeting{}, nil)
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			stdErr := &commonerrors.StandardError{}
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, commonerrors.ErrCodeConfigMissing, stdErr.Code)
			assert.Equal(t, "GEMINI_API_KEY is not set", stdErr.Message)
		})
	}
}

func TestGeminiContinueChat(t *testing.T) {
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiText("Focus on the Golden Lion account.")))
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	messages := []coach.ChatMessage{
		{ID: "1", Role: coach.RoleUser, Text: "Where should I focus?"},
		{ID: "2", Role: coach.RoleModel, Text: "Let me check."},
		{ID: "3", Role: coach.RoleUser, Text: "Thanks."},
	}

	text, err := p.ContinueChat(context.Background(), messages, makeSalesRecords(2))
	require.NoError(t, err)
	assert.Equal(t, "Focus on the Golden Lion account.", text)

	// Gemini keeps the "model" role; order preserved.
	require.Len(t, gotBody.Contents, 3)
	assert.Equal(t, coach.RoleUser, gotBody.Contents[0].Role)
	assert.Equal(t, coach.RoleModel, gotBody.Contents[1].Role)
	assert.Equal(t, coach.RoleUser, gotBody.Contents[2].Role)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Contains(t, gotBody.SystemInstruction.Parts[0].Text, "AI Sales Coach")
}

func TestGeminiContinueChatEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	text, err := p.ContinueChat(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, chatFallback, text)
}

func TestGeminiGenerateMeetingPrep(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiText(`{
			"customerInfo": "• info",
			"analyzePerformance": "• perf",
			"setObjectives": "• goals",
			"prepareMaterials": "• materials"
		}`)))
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	notes, err := p.GenerateMeetingPrep(context.Background(), coach.Meeting{AccountName: "A"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "• info", notes.CustomerInfo)
	assert.Equal(t, "• materials", notes.PrepareMaterials)
}

func TestGeminiVendorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	_, err := p.GenerateCoachInsights(context.Background(), nil)

	require.Error(t, err)
	stdErr := &commonerrors.StandardError{}
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeProviderCallFailed, stdErr.Code)
}

func TestGeminiMalformedInsightPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiText(`[{"type":"Bogus","title":"T","description":"D","prompt":"P"}]`)))
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	_, err := p.GenerateCoachInsights(context.Background(), nil)

	require.Error(t, err)
	stdErr := &commonerrors.StandardError{}
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeMalformedResponse, stdErr.Code)
}

func TestGeminiRetriesTransientFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write([]byte(geminiText("recovered")))
	}))
	defer srv.Close()

	p := NewGeminiProvider(config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.5-flash",
		Timeout: 5000,
	}, config.RetryConfig{MaxRetries: 1, InitialBackoff: 1}, logger.NewTestLogger(t))

	text, err := p.ContinueChat(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, attempts)
}

func TestGeminiNoRetryByDefault(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := newTestGemini(t, srv.URL)
	_, err := p.ContinueChat(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
