package state

import (
	"sync"

	"github.com/google/uuid"

	"todo-manager-bot/internal/model"
)

// Manager управляет сессиями диалогов пользователей.
// Ровно одна сессия на пользователя: повторный запуск диалога заменяет
// предыдущую сессию, а не навешивает ещё один обработчик.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session // telegramID -> Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(telegramID int64) UserState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[telegramID]; exists {
		return session.State
	}
	return StateNone
}

// SessionID возвращает идентификатор активной сессии пользователя
func (m *Manager) SessionID(telegramID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[telegramID]; exists {
		return session.ID
	}
	return ""
}

// SetState устанавливает состояние пользователя. Переход в StateNone
// удаляет сессию вместе с черновиком.
func (m *Manager) SetState(telegramID int64, state UserState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state == StateNone {
		delete(m.sessions, telegramID)
		return
	}

	if session, exists := m.sessions[telegramID]; exists {
		session.State = state
		return
	}

	m.sessions[telegramID] = &Session{
		ID:    uuid.NewString(),
		State: state,
	}
}

// Draft возвращает копию черновика задачи текущей сессии
func (m *Manager) Draft(telegramID int64) (model.TaskDraft, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[telegramID]; exists {
		return session.Draft, true
	}
	return model.TaskDraft{}, false
}

// UpdateDraft изменяет черновик активной сессии.
// Без активной сессии ничего не делает и возвращает false.
func (m *Manager) UpdateDraft(telegramID int64, update func(*model.TaskDraft)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[telegramID]
	if !exists {
		return false
	}
	update(&session.Draft)
	return true
}

// ClearState очищает состояние и черновик пользователя
func (m *Manager) ClearState(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, telegramID)
}
