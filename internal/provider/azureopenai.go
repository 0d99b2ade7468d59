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

// AzureOpenAIProvider calls the Azure OpenAI chat completions API.
type AzureOpenAIProvider struct {
	cfg    config.AzureOpenAIConfig
	retry  config.RetryConfig
	client *http.Client
	logger logger.Logger
}

func NewAzureOpenAIProvider(cfg config.AzureOpenAIConfig, retry config.RetryConfig, log logger.Logger) *AzureOpenAIProvider {
	return &AzureOpenAIProvider{
		cfg:    cfg,
		retry:  retry,
		client: httpclient.New(),
		logger: log.With(map[string]interface{}{"provider": NameAzureOpenAI}),
	}
}

func (p *AzureOpenAIProvider) Name() string { return NameAzureOpenAI }

func (p *AzureOpenAIProvider) Available() bool {
	return p.cfg.APIKey != "" && p.cfg.Endpoint != "" && p.cfg.ChatDeployment != ""
}

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureResponseFormat struct {
	Type string `json:"type"`
}

type azureChatRequest struct {
	Messages       []azureMessage       `json:"messages"`
	ResponseFormat *azureResponseFormat `json:"response_format,omitempty"`
	Temperature    float64              `json:"temperature"`
}

type azureChatResponse struct {
	Choices []struct {
		Message azureMessage `json:"message"`
	} `json:"choices"`
}

type azureErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// The insight prompt asks for a wrapped object because json_object mode
// rejects top-level arrays.
const azureInsightEnvelopeInstruction = `

You must return a valid JSON object with an "insights" property containing an array. Use this exact structure:
{
  "insights": [
    {
      "type": "Upsell",
      "title": "Example Title",
      "description": "Example description.",
      "prompt": "Example question?"
    }
  ]
}`

const azureMeetingNotesEnvelopeInstruction = `

Return the response as a JSON object with the following structure:
{
  "customerInfo": "string with bullet points",
  "analyzePerformance": "string with bullet points",
  "setObjectives": "string with bullet points",
  "prepareMaterials": "string with bullet points"
}`

func (p *AzureOpenAIProvider) GenerateCoachInsights(ctx context.Context, salesData []coach.SalesRecord) ([]coach.CoachInsight, error) {
	req := azureChatRequest{
		Messages: []azureMessage{
			{Role: "user", Content: insightsPrompt(salesData) + azureInsightEnvelopeInstruction},
		},
		ResponseFormat: &azureResponseFormat{Type: "json_object"},
		Temperature:    0.7,
	}

	text, err := p.chatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		text = `{"insights": []}`
	}

	insights, err := decodeInsights([]byte(text))
	if err != nil {
		return nil, commonerrors.NewMalformedResponseError(NameAzureOpenAI, err)
	}
	return insights, nil
}

func (p *AzureOpenAIProvider) ContinueChat(ctx context.Context, messages []coach.ChatMessage, salesData []coach.SalesRecord) (string, error) {
	chatMessages := make([]azureMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, azureMessage{Role: "system", Content: chatSystemInstruction(salesData)})
	for _, m := range messages {
		role := m.Role
		if role == coach.RoleModel {
			role = "assistant"
		}
		chatMessages = append(chatMessages, azureMessage{Role: role, Content: m.Text})
	}

	req := azureChatRequest{
		Messages:    chatMessages,
		Temperature: 0.7,
	}

	text, err := p.chatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return chatFallback, nil
	}
	return text, nil
}

func (p *AzureOpenAIProvider) GenerateMeetingPrep(ctx context.Context, meeting coach.Meeting, salesData []coach.SalesRecord) (coach.MeetingNotes, error) {
	req := azureChatRequest{
		Messages: []azureMessage{
			{Role: "user", Content: meetingPrepPrompt(meeting, salesData) + azureMeetingNotesEnvelopeInstruction},
		},
		ResponseFormat: &azureResponseFormat{Type: "json_object"},
		Temperature:    0.7,
	}

	text, err := p.chatCompletion(ctx, req)
	if err != nil {
		return coach.MeetingNotes{}, err
	}

	notes, err := decodeMeetingNotes([]byte(text))
	if err != nil {
		return coach.MeetingNotes{}, commonerrors.NewMalformedResponseError(NameAzureOpenAI, err)
	}
	return notes, nil
}

// chatCompletion issues one chat completions call against the configured
// deployment and returns the first choice's content.
func (p *AzureOpenAIProvider) chatCompletion(ctx context.Context, chatReq azureChatRequest) (string, error) {
	if p.cfg.APIKey == "" {
		return "", commonerrors.NewConfigMissingError("AZURE_OPENAI_API_KEY")
	}
	if p.cfg.Endpoint == "" {
		return "", commonerrors.NewConfigMissingError("AZURE_OPENAI_ENDPOINT")
	}
	if p.cfg.ChatDeployment == "" {
		return "", commonerrors.NewConfigMissingError("AZURE_OPENAI_CHAT_DEPLOYMENT_NAME")
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", commonerrors.NewProviderCallFailedError(NameAzureOpenAI, fmt.Errorf("marshal request: %w", err))
	}

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.GetDuration(p.cfg.Timeout))
		defer cancel()
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(p.cfg.Endpoint, "/"), p.cfg.ChatDeployment, p.cfg.APIVersion)

	var text string
	err = callWithRetry(ctx, p.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return commonerrors.NewProviderCallFailedError(NameAzureOpenAI, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("api-key", p.cfg.APIKey)

		resp, err := p.client.Do(req)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return commonerrors.NewProviderTimeoutError(NameAzureOpenAI)
			}
			return commonerrors.NewProviderCallFailedError(NameAzureOpenAI, err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return commonerrors.NewProviderCallFailedError(NameAzureOpenAI, err)
		}

		p.logger.Debug("azure openai response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(respBody),
		})

		if resp.StatusCode != http.StatusOK {
			var errResp azureErrorResponse
			if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
				return commonerrors.NewProviderCallFailedError(NameAzureOpenAI, fmt.Errorf("status %d: %s", resp.StatusCode, errResp.Error.Message))
			}
			return commonerrors.NewProviderCallFailedError(NameAzureOpenAI, fmt.Errorf("status %d", resp.StatusCode))
		}

		var chatResp azureChatResponse
		if err := json.Unmarshal(respBody, &chatResp); err != nil {
			return commonerrors.NewMalformedResponseError(NameAzureOpenAI, fmt.Errorf("decode response: %w", err))
		}

		if len(chatResp.Choices) > 0 {
			text = chatResp.Choices[0].Message.Content
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}
