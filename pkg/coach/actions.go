package coach

import "encoding/json"

// The three proxy actions. The set is closed; anything else is rejected with
// HTTP 400 before any provider is touched.
const (
	ActionGenerateCoachInsights = "generateCoachInsights"
	ActionContinueChat          = "continueChat"
	ActionGenerateMeetingPrep   = "generateMeetingPrep"
)

// ActionRequest is the proxy request envelope. Payload stays raw until the
// action is known so each action decodes exactly its own shape.
type ActionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// InsightsPayload is the payload for generateCoachInsights.
type InsightsPayload struct {
	SalesData []SalesRecord `json:"salesData"`
}

// ChatPayload is the payload for continueChat.
type ChatPayload struct {
	Messages  []ChatMessage `json:"messages"`
	SalesData []SalesRecord `json:"salesData"`
}

// MeetingPrepPayload is the payload for generateMeetingPrep.
type MeetingPrepPayload struct {
	Meeting   Meeting       `json:"meeting"`
	SalesData []SalesRecord `json:"salesData"`
}

// ErrorResponse is the proxy error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
