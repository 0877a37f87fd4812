package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-manager-bot/internal/model"
)

func TestManager_AddFlowTransitions(t *testing.T) {
	m := NewManager()
	const userID int64 = 100

	assert.Equal(t, StateNone, m.GetState(userID))

	m.SetState(userID, StateAddTaskText)
	assert.Equal(t, StateAddTaskText, m.GetState(userID))
	sessionID := m.SessionID(userID)
	assert.NotEmpty(t, sessionID)

	ok := m.UpdateDraft(userID, func(draft *model.TaskDraft) {
		draft.Text = "купить хлеб"
	})
	require.True(t, ok)

	m.SetState(userID, StateAddTaskPriority)
	m.UpdateDraft(userID, func(draft *model.TaskDraft) {
		draft.Priority = model.PriorityHigh
	})

	// Сессия та же, черновик накапливается по шагам
	assert.Equal(t, sessionID, m.SessionID(userID))
	draft, ok := m.Draft(userID)
	require.True(t, ok)
	assert.Equal(t, "купить хлеб", draft.Text)
	assert.Equal(t, model.PriorityHigh, draft.Priority)
}

func TestManager_ClearDiscardsDraft(t *testing.T) {
	m := NewManager()
	const userID int64 = 100

	m.SetState(userID, StateAddTaskText)
	m.UpdateDraft(userID, func(draft *model.TaskDraft) {
		draft.Text = "что-то"
	})

	m.ClearState(userID)

	assert.Equal(t, StateNone, m.GetState(userID))
	_, ok := m.Draft(userID)
	assert.False(t, ok)
}

func TestManager_SetStateNoneRemovesSession(t *testing.T) {
	m := NewManager()
	const userID int64 = 100

	m.SetState(userID, StateAddTaskDueDate)
	m.SetState(userID, StateNone)

	_, ok := m.Draft(userID)
	assert.False(t, ok)
	assert.Empty(t, m.SessionID(userID))
}

func TestManager_UpdateDraftWithoutSession(t *testing.T) {
	m := NewManager()

	ok := m.UpdateDraft(100, func(draft *model.TaskDraft) {
		draft.Text = "никуда не попадёт"
	})

	assert.False(t, ok)
}

func TestManager_UsersAreIsolated(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateAddTaskText)
	m.UpdateDraft(1, func(draft *model.TaskDraft) { draft.Text = "первый" })

	m.SetState(2, StateAddTaskPriority)
	m.UpdateDraft(2, func(draft *model.TaskDraft) { draft.Text = "второй" })

	first, _ := m.Draft(1)
	second, _ := m.Draft(2)
	assert.Equal(t, "первый", first.Text)
	assert.Equal(t, "второй", second.Text)
	assert.NotEqual(t, m.SessionID(1), m.SessionID(2))

	m.ClearState(1)
	assert.Equal(t, StateAddTaskPriority, m.GetState(2))
}

func TestManager_RestartReplacesSession(t *testing.T) {
	m := NewManager()
	const userID int64 = 100

	m.SetState(userID, StateAddTaskText)
	m.UpdateDraft(userID, func(draft *model.TaskDraft) { draft.Text = "старый" })
	oldSessionID := m.SessionID(userID)

	// Повторный /add: старая сессия удаляется, новая начинается с чистого черновика
	m.ClearState(userID)
	m.SetState(userID, StateAddTaskText)

	assert.NotEqual(t, oldSessionID, m.SessionID(userID))
	draft, ok := m.Draft(userID)
	require.True(t, ok)
	assert.Empty(t, draft.Text)
}

func TestManager_CancelBetweenStepsLeavesNoSession(t *testing.T) {
	m := NewManager()
	const userID int64 = 100

	m.SetState(userID, StateAddTaskText)

	// /cancel успевает сработать после проверки состояния, но до записи
	// черновика: запись обязана отказать, а не завести новую сессию
	m.ClearState(userID)

	ok := m.UpdateDraft(userID, func(draft *model.TaskDraft) {
		draft.Text = "опоздавший текст"
	})

	assert.False(t, ok)
	assert.Equal(t, StateNone, m.GetState(userID))
	_, exists := m.Draft(userID)
	assert.False(t, exists)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			m.SetState(userID, StateAddTaskText)
			m.UpdateDraft(userID, func(draft *model.TaskDraft) { draft.Text = "x" })
			m.GetState(userID)
			m.ClearState(userID)
		}(int64(i % 10))
	}
	wg.Wait()
}
