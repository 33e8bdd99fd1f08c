package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskStartsRunning(t *testing.T) {
	task := NewTask("t1", "c1")

	assert.Equal(t, TaskStateRunning, task.Status.State)
	assert.False(t, task.Status.State.Terminal())
	assert.Empty(t, task.History)
}

func TestApplyStatusAppendsOutputMessage(t *testing.T) {
	task := NewTask("t1", "c1")
	reply := NewTextMessage(RoleAgent, "done", "t1", "c1")

	task, err := ApplyStatus(task, TaskStatus{State: TaskStateCompleted, Message: &reply})
	require.NoError(t, err)

	assert.Equal(t, TaskStateCompleted, task.Status.State)
	require.Len(t, task.History, 1)
	assert.Equal(t, "done", task.History[0].Text())
}

func TestTerminalStatesRejectFurtherTransitions(t *testing.T) {
	for _, terminal := range []TaskState{TaskStateCompleted, TaskStateCanceled} {
		task := NewTask("t1", "c1")
		task, err := ApplyStatus(task, TaskStatus{State: terminal})
		require.NoError(t, err)

		_, err = ApplyStatus(task, TaskStatus{State: TaskStateRunning})
		assert.Error(t, err, "transition out of %s must be rejected", terminal)

		_, err = ApplyStatus(task, TaskStatus{State: TaskStateCompleted})
		assert.Error(t, err)
	}
}

func TestStatusUpdateFinalFlag(t *testing.T) {
	task := NewTask("t1", "c1")
	update := StatusUpdate(task)
	assert.Equal(t, "t1", update.TaskID)
	assert.Equal(t, "c1", update.ContextID)
	assert.False(t, update.Final)

	task, err := ApplyStatus(task, TaskStatus{State: TaskStateCanceled})
	require.NoError(t, err)
	update = StatusUpdate(task)
	assert.True(t, update.Final)
	assert.Equal(t, TaskStateCanceled, update.Status.State)
}

func TestNewTextMessage(t *testing.T) {
	msg := NewTextMessage(RoleUser, "hello", "", "ctx")

	assert.NotEmpty(t, msg.MessageID)
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Text())
	assert.Empty(t, msg.TaskID)
	assert.Equal(t, "ctx", msg.ContextID)

	other := NewTextMessage(RoleUser, "hello", "", "ctx")
	assert.NotEqual(t, msg.MessageID, other.MessageID)
}

func TestMessageTextConcatenatesParts(t *testing.T) {
	msg := Message{Parts: []TextPart{{Text: "a"}, {Text: "b"}, {Text: "c"}}}
	assert.Equal(t, "abc", msg.Text())
	assert.Equal(t, "", Message{}.Text())
}
