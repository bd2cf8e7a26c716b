package model

// Conversation roles accepted in generation history.
// "gm" marks game-master turns and maps to the provider's assistant role.
const (
	RoleUser      = "user"
	RoleGM        = "gm"
	RoleSystem    = "system"
	RoleAssistant = "assistant"
)

// Message is one turn of generation history
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest asks the text-generation provider for a completion
type GenerateRequest struct {
	Prompt  string    `json:"prompt"`
	History []Message `json:"history,omitempty"`
}

// GenerateResponse carries the provider's completion text
type GenerateResponse struct {
	Response string `json:"response"`
}
