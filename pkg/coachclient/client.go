// Package coachclient is the typed facade for the coach proxy so callers
// never construct raw HTTP requests. Failure handling is asymmetric on
// purpose: insights degrade silently to a fallback because they are
// decorative, while chat and meeting-prep failures surface as errors so the
// user knows to retry.
package coachclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"salescoach-api/pkg/coach"
)

// Fallback insight shown when insight generation fails end to end.
var fallbackInsight = coach.CoachInsight{
	Type:        coach.InsightRisk,
	Title:       "Failed to Generate Insights",
	Description: "There was an issue connecting to the AI coach. Please try again later.",
	Prompt:      "Why did my insights fail to load?",
}

// Client talks to one provider endpoint of the coach proxy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the given proxy endpoint URL, e.g.
// http://localhost:8080/api/coach/gemini.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateCoachInsights fetches coaching insights for the dashboard. It never
// returns an error: any failure yields a single Risk-typed fallback insight.
func (c *Client) GenerateCoachInsights(ctx context.Context, salesData []coach.SalesRecord) []coach.CoachInsight {
	payload := coach.InsightsPayload{SalesData: salesData}

	var result struct {
		Data []coach.CoachInsight `json:"data"`
	}
	if err := c.post(ctx, coach.ActionGenerateCoachInsights, payload, &result); err != nil {
		c.logger.Error("error generating coach insights", zap.Error(err))
		return []coach.CoachInsight{fallbackInsight}
	}
	return result.Data
}

// ContinueChat returns a lazy stream over the assistant's reply. No HTTP
// request is issued until the first Recv call; the stream yields exactly one
// chunk holding the full text, then io.EOF. This is the seam where true
// token-level streaming could be substituted without changing callers.
func (c *Client) ContinueChat(ctx context.Context, messages []coach.ChatMessage, salesData []coach.SalesRecord) *ChatStream {
	return &ChatStream{
		fetch: func() (string, error) {
			payload := coach.ChatPayload{Messages: messages, SalesData: salesData}

			var result struct {
				Data string `json:"data"`
			}
			if err := c.post(ctx, coach.ActionContinueChat, payload, &result); err != nil {
				return "", err
			}
			return result.Data, nil
		},
	}
}

// GenerateMeetingPrep fetches the four preparation sections for a meeting.
// Errors propagate; use FallbackNotes to fill the sections on failure.
func (c *Client) GenerateMeetingPrep(ctx context.Context, meeting coach.Meeting, salesData []coach.SalesRecord) (coach.MeetingNotes, error) {
	payload := coach.MeetingPrepPayload{Meeting: meeting, SalesData: salesData}

	var result struct {
		Data coach.MeetingNotes `json:"data"`
	}
	if err := c.post(ctx, coach.ActionGenerateMeetingPrep, payload, &result); err != nil {
		return coach.MeetingNotes{}, err
	}
	return result.Data, nil
}

// FallbackNotes fills every section with the same message, used by callers
// when GenerateMeetingPrep fails end to end.
func FallbackNotes(msg string) coach.MeetingNotes {
	return coach.MeetingNotes{
		CustomerInfo:       msg,
		AnalyzePerformance: msg,
		SetObjectives:      msg,
		PrepareMaterials:   msg,
	}
}

func (c *Client) post(ctx context.Context, action string, payload interface{}, out interface{}) error {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	body, err := json.Marshal(coach.ActionRequest{Action: action, Payload: rawPayload})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp coach.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: status %d: %s", action, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s: status %d: %s", action, resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", action, err)
	}
	return nil
}
