package domain

import "fmt"

// TaskState enumerates lifecycle states for conversational tasks.
type TaskState string

const (
	TaskStateRunning   TaskState = "running"
	TaskStateCompleted TaskState = "completed"
	TaskStateCanceled  TaskState = "canceled"
)

// Terminal reports whether the state admits no further transitions.
func (s TaskState) Terminal() bool {
	return s == TaskStateCompleted || s == TaskStateCanceled
}

// TaskStatus wraps a task's current state and optional latest output message.
type TaskStatus struct {
	State   TaskState `json:"state"`
	Message *Message  `json:"message,omitempty"`
}

// Task is a unit of multi-step conversational work: its message history plus
// the current status. The core never transitions tasks itself; the owning
// caller drives transitions through ApplyStatus.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	History   []Message  `json:"history"`
	Status    TaskStatus `json:"status"`
}

// TaskStatusUpdateEvent is pushed to consumers when a task reaches a new
// state. Final is true exactly when the new state is terminal; consumers must
// stop listening for the task id once they observe it.
type TaskStatusUpdateEvent struct {
	TaskID    string     `json:"taskId"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Final     bool       `json:"final"`
}

// NewTask creates a task in the running state.
func NewTask(id, contextID string) Task {
	return Task{
		ID:        id,
		ContextID: contextID,
		History:   []Message{},
		Status:    TaskStatus{State: TaskStateRunning},
	}
}

// ApplyStatus returns a copy of the task with the new status applied. A task
// whose state is already terminal rejects any further transition.
func ApplyStatus(task Task, status TaskStatus) (Task, error) {
	if task.Status.State.Terminal() {
		return task, fmt.Errorf("task %s is %s and accepts no further transitions", task.ID, task.Status.State)
	}
	task.Status = status
	if status.Message != nil {
		task.History = append(task.History, *status.Message)
	}
	return task, nil
}

// StatusUpdate builds the update event announcing the task's current status.
func StatusUpdate(task Task) TaskStatusUpdateEvent {
	return TaskStatusUpdateEvent{
		TaskID:    task.ID,
		ContextID: task.ContextID,
		Status:    task.Status,
		Final:     task.Status.State.Terminal(),
	}
}
