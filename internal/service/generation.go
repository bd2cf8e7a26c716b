package service

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/forgo/realmkeep/internal/model"
)

// chatCompleter is the slice of the provider client the service uses
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GenerationService produces narrative text through an OpenAI-compatible
// hosted-inference endpoint. Failures are terminal; nothing is retried.
type GenerationService struct {
	chat  chatCompleter
	model string
}

// GenerationConfig holds provider settings
type GenerationConfig struct {
	APIKey  string
	BaseURL string // empty means the provider's default endpoint
	Model   string
}

// NewGenerationService creates a generation service against the configured
// provider endpoint
func NewGenerationService(cfg GenerationConfig) *GenerationService {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &GenerationService{
		chat:  openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// Generate sends the conversation history plus the prompt as the final user
// turn and returns the first completion verbatim
func (s *GenerationService) Generate(ctx context.Context, prompt string, history []model.Message) (string, error) {
	if prompt == "" {
		return "", ErrPromptRequired
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    providerRole(m.Role),
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// providerRole maps conversation roles onto the provider's role set.
// Game-master turns count as assistant turns; anything unrecognized is
// treated as a user turn.
func providerRole(role string) string {
	switch role {
	case model.RoleGM, model.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	case model.RoleSystem:
		return openai.ChatMessageRoleSystem
	default:
		return openai.ChatMessageRoleUser
	}
}
