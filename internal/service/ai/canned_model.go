package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/yara-ai/internal/analysis/intent"
	applog "github.com/zhouzirui/yara-ai/internal/log"
)

// ExtraCategory is the schema.Message Extra key carrying the matched category.
const ExtraCategory = "category"

// CategoryFallback marks replies drawn from the default pool.
const CategoryFallback = "fallback"

// ErrNoUserMessage is returned when the model input has no user turn to answer.
var ErrNoUserMessage = errors.New("no user message in model input")

var _ model.BaseChatModel = (*CannedChatModel)(nil)

// CannedChatModel 是一个本地的“伪”大模型：根据最后一条用户消息的关键词返回固定回复，不访问任何网络服务。
type CannedChatModel struct {
	selector *intent.Selector
	log      *zerolog.Logger
}

// NewCannedChatModel wraps selector as an eino chat model.
func NewCannedChatModel(selector *intent.Selector, logger *zerolog.Logger) *CannedChatModel {
	if selector == nil {
		selector = intent.Default()
	}
	return &CannedChatModel{selector: selector, log: applog.OrNop(logger)}
}

// Generate answers the last user message in input.
func (m *CannedChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query, ok := lastUserContent(input)
	if !ok {
		return nil, ErrNoUserMessage
	}

	category := CategoryFallback
	if c, matched := m.selector.Match(query); matched {
		category = c.Name
	}
	reply := m.selector.Select(query)

	m.log.Debug().Str("category", category).Int("reply_len", len(reply)).Msg("canned reply selected")

	msg := schema.AssistantMessage(reply, nil)
	msg.Extra = map[string]any{ExtraCategory: category}
	return msg, nil
}

// Stream emits the Generate reply word by word. Concatenating the chunk
// contents yields the full reply.
func (m *CannedChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	full, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}

	words := strings.SplitAfter(full.Content, " ")
	chunks := make([]*schema.Message, 0, len(words))
	for i, word := range words {
		if word == "" {
			continue
		}
		chunk := schema.AssistantMessage(word, nil)
		if i == 0 {
			chunk.Extra = full.Extra
		}
		chunks = append(chunks, chunk)
	}
	return schema.StreamReaderFromArray(chunks), nil
}

// CategoryOf reads the category stamped on a reply by CannedChatModel.
func CategoryOf(msg *schema.Message) string {
	if msg == nil || msg.Extra == nil {
		return ""
	}
	category, _ := msg.Extra[ExtraCategory].(string)
	return category
}

func lastUserContent(input []*schema.Message) (string, bool) {
	for i := len(input) - 1; i >= 0; i-- {
		msg := input[i]
		if msg != nil && msg.Role == schema.User {
			return msg.Content, true
		}
	}
	return "", false
}
