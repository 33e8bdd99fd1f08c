package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-mesh/internal/agent"
	"github.com/spec-kit/support-mesh/internal/domain"
	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

func newTestAgentService() *AgentService {
	return NewAgentService(AgentDependencies{
		Agents: agent.NewRegistry("http://localhost:8000"),
		Logger: zap.NewNop(),
	})
}

func TestHandleMessageCompletesTask(t *testing.T) {
	svc := newTestAgentService()

	incoming := domain.NewTextMessage(domain.RoleUser, "my payment failed", "", "")
	result, err := svc.HandleMessage(context.Background(), "payment", incoming)
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStateCompleted, result.Task.Status.State)
	require.NotNil(t, result.Task.Status.Message)
	assert.Contains(t, result.Task.Status.Message.Text(), "Payment Agent Response")
	assert.Contains(t, result.Task.Status.Message.Text(), "my payment failed")

	// Incoming message plus the reply.
	require.Len(t, result.Task.History, 2)
	assert.Equal(t, domain.RoleUser, result.Task.History[0].Role)
	assert.Equal(t, domain.RoleAgent, result.Task.History[1].Role)
}

func TestHandleMessageStatusUpdates(t *testing.T) {
	svc := newTestAgentService()

	incoming := domain.NewTextMessage(domain.RoleUser, "hello", "", "")
	result, err := svc.HandleMessage(context.Background(), "support", incoming)
	require.NoError(t, err)

	require.Len(t, result.Updates, 2)
	assert.Equal(t, domain.TaskStateRunning, result.Updates[0].Status.State)
	assert.False(t, result.Updates[0].Final)
	assert.Equal(t, domain.TaskStateCompleted, result.Updates[1].Status.State)
	assert.True(t, result.Updates[1].Final)

	for _, update := range result.Updates {
		assert.Equal(t, result.Task.ID, update.TaskID)
		assert.Equal(t, result.Task.ContextID, update.ContextID)
	}
}

func TestHandleMessagePreservesTaskAndContextIDs(t *testing.T) {
	svc := newTestAgentService()

	incoming := domain.NewTextMessage(domain.RoleUser, "hi", "task-7", "ctx-9")
	result, err := svc.HandleMessage(context.Background(), "support", incoming)
	require.NoError(t, err)

	assert.Equal(t, "task-7", result.Task.ID)
	assert.Equal(t, "ctx-9", result.Task.ContextID)
	assert.Equal(t, "task-7", result.Task.Status.Message.TaskID)
}

func TestSupportAgentKeywordSuggestions(t *testing.T) {
	svc := newTestAgentService()

	tests := []struct {
		text string
		want string
	}{
		{"I forgot my password", "resetting your password"},
		{"there is a problem with my order", "open a support ticket"},
		{"show me my recent activity", "recent activity"},
		{"something else entirely", "follow-up"},
	}
	for _, tt := range tests {
		incoming := domain.NewTextMessage(domain.RoleUser, tt.text, "", "")
		result, err := svc.HandleMessage(context.Background(), "support", incoming)
		require.NoError(t, err)
		assert.Contains(t, result.Task.Status.Message.Text(), tt.want)
	}
}

func TestHandleMessageUnknownAgent(t *testing.T) {
	svc := newTestAgentService()

	incoming := domain.NewTextMessage(domain.RoleUser, "hi", "", "")
	_, err := svc.HandleMessage(context.Background(), "billing", incoming)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCard(t *testing.T) {
	svc := newTestAgentService()

	card, err := svc.Card("payment")
	require.NoError(t, err)
	assert.Equal(t, "Payment Agent", card.Name)
	assert.True(t, card.Capabilities.Streaming)
	require.Len(t, card.Skills, 1)
	assert.Equal(t, "payment", card.Skills[0].ID)

	_, err = svc.Card("nope")
	assert.Error(t, err)
}
