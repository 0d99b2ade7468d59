package coach

// Chat roles as they appear on the wire. "model" is the assistant role; the
// Azure adapter maps it to "assistant", Gemini keeps it as-is.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}
