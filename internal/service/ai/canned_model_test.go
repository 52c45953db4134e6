package ai

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/yara-ai/internal/analysis/intent"
)

func TestCannedChatModelAnswersLastUserTurn(t *testing.T) {
	m := NewCannedChatModel(nil, nil)

	input := []*schema.Message{
		schema.SystemMessage("system"),
		schema.UserMessage("what does it cost"),
		schema.AssistantMessage("earlier", nil),
		schema.UserMessage("hello"),
	}

	msg, err := m.Generate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, intent.CategoryGreeting, CategoryOf(msg))
}

func TestCannedChatModelRequiresUserTurn(t *testing.T) {
	m := NewCannedChatModel(nil, nil)

	_, err := m.Generate(context.Background(), []*schema.Message{schema.SystemMessage("only system")})
	require.ErrorIs(t, err, ErrNoUserMessage)
}

func TestCannedChatModelHonoursCancellation(t *testing.T) {
	m := NewCannedChatModel(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Stream(ctx, []*schema.Message{schema.UserMessage("hi")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCategoryOfNil(t *testing.T) {
	assert.Empty(t, CategoryOf(nil))
	assert.Empty(t, CategoryOf(schema.AssistantMessage("x", nil)))
}
