// Package provider translates the proxy's three normalized actions into
// vendor-specific LLM API calls.
package provider

import (
	"context"

	"salescoach-api/pkg/coach"
)

// Provider names as reported by Name() and used in metrics labels.
const (
	NameGemini      = "gemini"
	NameAzureOpenAI = "azure-openai"
)

// Provider is the single capability both vendors implement. All operations
// issue at most one vendor call per invocation and honor ctx cancellation.
type Provider interface {
	Name() string

	// GenerateCoachInsights summarizes recent sales records into 3-5 typed
	// coaching insights via the vendor's structured JSON output mode.
	GenerateCoachInsights(ctx context.Context, salesData []coach.SalesRecord) ([]coach.CoachInsight, error)

	// ContinueChat sends the conversation plus a sales-context system
	// instruction and returns the full reply text in one shot.
	ContinueChat(ctx context.Context, messages []coach.ChatMessage, salesData []coach.SalesRecord) (string, error)

	// GenerateMeetingPrep produces the four fixed preparation sections for
	// the meeting's account.
	GenerateMeetingPrep(ctx context.Context, meeting coach.Meeting, salesData []coach.SalesRecord) (coach.MeetingNotes, error)

	// Available reports whether the provider's configuration is complete
	// enough to attempt a call.
	Available() bool
}
