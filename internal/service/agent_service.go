package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-mesh/internal/agent"
	"github.com/spec-kit/support-mesh/internal/domain"
	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

// AgentService owns the conversational task lifecycle: it is the caller that
// drives Task transitions, which the domain model itself never does.
type AgentService struct {
	agents *agent.Registry
	logger *zap.Logger
}

// AgentDependencies bundles collaborators for the agent service.
type AgentDependencies struct {
	Agents *agent.Registry
	Logger *zap.Logger
}

// MessageResult is the outcome of handling one incoming message: the final
// task plus the ordered status updates produced along the way. The last
// update always carries Final=true.
type MessageResult struct {
	Task    domain.Task                    `json:"task"`
	Updates []domain.TaskStatusUpdateEvent `json:"updates"`
}

// NewAgentService constructs the service.
func NewAgentService(deps AgentDependencies) *AgentService {
	return &AgentService{agents: deps.Agents, logger: deps.Logger}
}

// Card returns the metadata card for the named agent.
func (s *AgentService) Card(agentID string) (agent.Card, error) {
	responder, ok := s.agents.Lookup(agentID)
	if !ok {
		return agent.Card{}, apperrors.NewNotFound("agent", map[string]any{"agent": agentID})
	}
	return responder.Card(), nil
}

// HandleMessage runs one conversational turn: a task starts running, the
// responder produces a reply, and the task completes with the reply attached.
func (s *AgentService) HandleMessage(ctx context.Context, agentID string, incoming domain.Message) (*MessageResult, error) {
	responder, ok := s.agents.Lookup(agentID)
	if !ok {
		return nil, apperrors.NewNotFound("agent", map[string]any{"agent": agentID})
	}

	taskID := incoming.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := incoming.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}

	task := domain.NewTask(taskID, contextID)
	incoming.TaskID = taskID
	incoming.ContextID = contextID
	task.History = append(task.History, incoming)

	updates := []domain.TaskStatusUpdateEvent{domain.StatusUpdate(task)}

	reply := domain.NewTextMessage(domain.RoleAgent, responder.Respond(incoming.Text()), taskID, contextID)
	task, err := domain.ApplyStatus(task, domain.TaskStatus{
		State:   domain.TaskStateCompleted,
		Message: &reply,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	updates = append(updates, domain.StatusUpdate(task))

	s.logger.Info("agent handled message",
		zap.String("agent", agentID),
		zap.String("task_id", taskID),
		zap.String("state", string(task.Status.State)),
	)

	return &MessageResult{Task: task, Updates: updates}, nil
}
