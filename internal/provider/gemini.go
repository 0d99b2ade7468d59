package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"salescoach-api/internal/common/config"
	commonerrors "salescoach-api/internal/common/errors"
	"salescoach-api/internal/common/httpclient"
	"salescoach-api/internal/common/logger"
	"salescoach-api/pkg/coach"
)

// GeminiProvider calls the Google Generative Language REST API.
type GeminiProvider struct {
	cfg    config.GeminiConfig
	retry  config.RetryConfig
	client *http.Client
	logger logger.Logger
}

func NewGeminiProvider(cfg config.GeminiConfig, retry config.RetryConfig, log logger.Logger) *GeminiProvider {
	return &GeminiProvider{
		cfg:    cfg,
		retry:  retry,
		client: httpclient.New(),
		logger: log.With(map[string]interface{}{"provider": NameGemini}),
	}
}

func (p *GeminiProvider) Name() string { return NameGemini }

func (p *GeminiProvider) Available() bool { return p.cfg.APIKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Structured-output schemas in the Gemini responseSchema dialect.
var (
	geminiInsightSchema = json.RawMessage(`{
		"type": "ARRAY",
		"items": {
			"type": "OBJECT",
			"properties": {
				"type": {"type": "STRING"},
				"title": {"type": "STRING"},
				"description": {"type": "STRING"},
				"prompt": {"type": "STRING"}
			},
			"required": ["type", "title", "description", "prompt"]
		}
	}`)

	geminiMeetingNotesSchema = json.RawMessage(`{
		"type": "OBJECT",
		"properties": {
			"customerInfo": {"type": "STRING"},
			"analyzePerformance": {"type": "STRING"},
			"setObjectives": {"type": "STRING"},
			"prepareMaterials": {"type": "STRING"}
		},
		"required": ["customerInfo", "analyzePerformance", "setObjectives", "prepareMaterials"]
	}`)
)

func (p *GeminiProvider) GenerateCoachInsights(ctx context.Context, salesData []coach.SalesRecord) ([]coach.CoachInsight, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: coach.RoleUser, Parts: []geminiPart{{Text: insightsPrompt(salesData)}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   geminiInsightSchema,
		},
	}

	text, err := p.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	insights, err := decodeInsights([]byte(text))
	if err != nil {
		return nil, commonerrors.NewMalformedResponseError(NameGemini, err)
	}
	return insights, nil
}

func (p *GeminiProvider) ContinueChat(ctx context.Context, messages []coach.ChatMessage, salesData []coach.SalesRecord) (string, error) {
	contents := make([]geminiContent, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}

	req := geminiRequest{
		Contents:          contents,
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: chatSystemInstruction(salesData)}}},
	}

	text, err := p.generateContent(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return chatFallback, nil
	}
	return text, nil
}

func (p *GeminiProvider) GenerateMeetingPrep(ctx context.Context, meeting coach.Meeting, salesData []coach.SalesRecord) (coach.MeetingNotes, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: coach.RoleUser, Parts: []geminiPart{{Text: meetingPrepPrompt(meeting, salesData)}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   geminiMeetingNotesSchema,
		},
	}

	text, err := p.generateContent(ctx, req)
	if err != nil {
		return coach.MeetingNotes{}, err
	}

	notes, err := decodeMeetingNotes([]byte(text))
	if err != nil {
		return coach.MeetingNotes{}, commonerrors.NewMalformedResponseError(NameGemini, err)
	}
	return notes, nil
}

// generateContent issues one generateContent call and returns the first
// candidate's concatenated text parts.
func (p *GeminiProvider) generateContent(ctx context.Context, genReq geminiRequest) (string, error) {
	if p.cfg.APIKey == "" {
		return "", commonerrors.NewConfigMissingError("GEMINI_API_KEY")
	}

	body, err := json.Marshal(genReq)
	if err != nil {
		return "", commonerrors.NewProviderCallFailedError(NameGemini, fmt.Errorf("marshal request: %w", err))
	}

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.GetDuration(p.cfg.Timeout))
		defer cancel()
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(p.cfg.BaseURL, "/"), p.cfg.Model)

	var text string
	err = callWithRetry(ctx, p.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return commonerrors.NewProviderCallFailedError(NameGemini, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", p.cfg.APIKey)

		resp, err := p.client.Do(req)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return commonerrors.NewProviderTimeoutError(NameGemini)
			}
			return commonerrors.NewProviderCallFailedError(NameGemini, err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return commonerrors.NewProviderCallFailedError(NameGemini, err)
		}

		// Raw body is diagnostic only; logging must never fail the call.
		p.logger.Debug("gemini response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(respBody),
		})

		if resp.StatusCode != http.StatusOK {
			return commonerrors.NewProviderCallFailedError(NameGemini, fmt.Errorf("status %d: %s", resp.StatusCode, respBody))
		}

		var genResp geminiResponse
		if err := json.Unmarshal(respBody, &genResp); err != nil {
			return commonerrors.NewMalformedResponseError(NameGemini, fmt.Errorf("decode response: %w", err))
		}

		var sb strings.Builder
		if len(genResp.Candidates) > 0 {
			for _, part := range genResp.Candidates[0].Content.Parts {
				sb.WriteString(part.Text)
			}
		}
		text = sb.String()
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}
