package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAccepted(t *testing.T) {
	svc := NewService(nil)

	n, err := svc.Submit(context.Background(), Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi there"})
	require.NoError(t, err)
	assert.Equal(t, "success", string(n.Kind))
	assert.Contains(t, n.Message, "within 24 hours")
}

func TestSubmitMissingFields(t *testing.T) {
	svc := NewService(nil)

	n, err := svc.Submit(context.Background(), Submission{Name: "  ", Email: "ada@example.com"})
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "message")
	assert.Equal(t, "error", string(n.Kind))
	assert.Equal(t, "Please fill in all fields before submitting.", n.Message)
}

func TestSubmitBadEmail(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Submit(context.Background(), Submission{Name: "Ada", Email: "not-an-email", Message: "Hi"})
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "email")
}
