package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/chat"
	"github.com/zhouzirui/yara-ai/internal/model/persona"
)

const historyLimit = 10

// ErrEmptyQuery is returned when asked to answer blank text.
var ErrEmptyQuery = errors.New("query is empty")

// Service encapsulates the assistant reply pipeline.
type Service struct {
	prompts *PersonaPromptManager
	chain   compose.Runnable[map[string]any, *schema.Message]
	log     *zerolog.Logger
}

// NewService compiles the prompt → model chain around chatModel.
func NewService(ctx context.Context, chatModel model.BaseChatModel, logger *zerolog.Logger) (*Service, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		prompts: NewPersonaPromptManager(),
		chain:   runnable,
		log:     applog.OrNop(logger),
	}, nil
}

// GenerateResponse answers userMessage in the context of the persona and transcript.
func (s *Service) GenerateResponse(ctx context.Context, p persona.Persona, history []chat.Message, userMessage string) (*schema.Message, error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, ErrEmptyQuery
	}

	response, err := s.chain.Invoke(ctx, s.buildChainInput(p, history, userMessage))
	if err != nil {
		return nil, fmt.Errorf("failed to run assistant chain: %w", err)
	}

	s.log.Debug().
		Str("persona", p.ID).
		Str("category", CategoryOf(response)).
		Int("length", len(response.Content)).
		Msg("generated response")
	return response, nil
}

// StreamResponse streams reply chunks via the configured chain.
func (s *Service) StreamResponse(ctx context.Context, p persona.Persona, history []chat.Message, userMessage string) (*schema.StreamReader[*schema.Message], error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, ErrEmptyQuery
	}

	stream, err := s.chain.Stream(ctx, s.buildChainInput(p, history, userMessage))
	if err != nil {
		return nil, fmt.Errorf("failed to stream assistant chain output: %w", err)
	}
	return stream, nil
}

func (s *Service) buildChainInput(p persona.Persona, history []chat.Message, userMessage string) map[string]any {
	return map[string]any{
		"system":  s.prompts.BuildSystemPrompt(p),
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}
}

// buildHistoryMessages keeps the most recent turns, mapped to schema roles.
func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderBot:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
