package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todo-manager-bot/internal/model"
)

// --- fakes ---

type fakeTaskSource struct {
	userIDs  []string
	tasks    map[string][]*model.Task
	listErrs map[string]error
}

func (s *fakeTaskSource) UserIDsWithTasks(_ context.Context) ([]string, error) {
	return s.userIDs, nil
}

func (s *fakeTaskSource) ListTomorrow(_ context.Context, userID string) ([]*model.Task, error) {
	if err := s.listErrs[userID]; err != nil {
		return nil, err
	}
	return s.tasks[userID], nil
}

type fakeSender struct {
	sent     []*bot.SendMessageParams
	sendErrs map[any]error
}

func (s *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	if err := s.sendErrs[params.ChatID]; err != nil {
		return nil, err
	}
	s.sent = append(s.sent, params)
	return &models.Message{}, nil
}

func newTestScheduler(tasks *fakeTaskSource, sender *fakeSender) *Scheduler {
	return NewScheduler(tasks, sender, zap.NewNop())
}

func TestNextFireTime(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2024, time.March, 15, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before morning run", day(6, 30), day(8, 0)},
		{"between runs", day(12, 0), day(20, 0)},
		{"exactly at morning run", day(8, 0), day(20, 0)},
		{"after evening run", day(21, 15), time.Date(2024, time.March, 16, 8, 0, 0, 0, time.Local)},
		{
			"last day of month",
			time.Date(2024, time.March, 31, 23, 0, 0, 0, time.Local),
			time.Date(2024, time.April, 1, 8, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextFireTime(tt.now))
		})
	}
}

func TestSendTomorrowReminders_SkipsUsersWithoutTasks(t *testing.T) {
	tasks := &fakeTaskSource{
		userIDs: []string{"100", "200"},
		tasks: map[string][]*model.Task{
			"200": {{Text: "Сдать отчёт", Priority: model.PriorityHigh}},
		},
	}
	sender := &fakeSender{}

	newTestScheduler(tasks, sender).sendTomorrowReminders(context.Background())

	// Пользователь без задач на завтра не получает сообщения вовсе
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "200", sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "Сдать отчёт")
}

func TestSendTomorrowReminders_OneMessagePerUser(t *testing.T) {
	tasks := &fakeTaskSource{
		userIDs: []string{"100"},
		tasks: map[string][]*model.Task{
			"100": {
				{Text: "Купить молоко", Priority: model.PriorityLow},
				{Text: "Позвонить врачу", Priority: model.PriorityHigh},
				{Text: "Полить цветы", Priority: model.PriorityMedium},
			},
		},
	}
	sender := &fakeSender{}

	newTestScheduler(tasks, sender).sendTomorrowReminders(context.Background())

	require.Len(t, sender.sent, 1)
	digest := sender.sent[0].Text
	assert.Contains(t, digest, "Купить молоко")
	assert.Contains(t, digest, "Позвонить врачу")
	assert.Contains(t, digest, "Полить цветы")
	assert.Contains(t, digest, "3 задачи")
}

func TestSendTomorrowReminders_FailureDoesNotAbortRun(t *testing.T) {
	tasks := &fakeTaskSource{
		userIDs: []string{"100", "200", "300"},
		tasks: map[string][]*model.Task{
			"200": {{Text: "задача второго", Priority: model.PriorityMedium}},
			"300": {{Text: "задача третьего", Priority: model.PriorityMedium}},
		},
		listErrs: map[string]error{"100": errors.New("connection refused")},
	}
	sender := &fakeSender{
		sendErrs: map[any]error{"200": errors.New("bot was blocked by the user")},
	}

	// Ошибка выборки у первого и ошибка отправки у второго
	// не мешают третьему получить дайджест
	newTestScheduler(tasks, sender).sendTomorrowReminders(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "300", sender.sent[0].ChatID)
}

func TestBuildDigest_SingleTask(t *testing.T) {
	tasks := []*model.Task{
		{Text: "Купить молоко", Priority: model.PriorityHigh},
	}

	digest := buildDigest(tasks)

	assert.Contains(t, digest, "1 задача")
	assert.Contains(t, digest, "🎯 Купить молоко")
	assert.Contains(t, digest, "Приоритет: высокий")
}

func TestBuildDigest_ContainsEveryTask(t *testing.T) {
	var tasks []*model.Task
	for i := 1; i <= 5; i++ {
		tasks = append(tasks, &model.Task{
			Text:     fmt.Sprintf("задача номер %d", i),
			Priority: model.PriorityMedium,
		})
	}

	digest := buildDigest(tasks)

	assert.Contains(t, digest, "5 задач")
	for _, task := range tasks {
		assert.Contains(t, digest, task.Text)
	}
	// Одно сообщение: по одному блоку на задачу
	assert.Equal(t, len(tasks), strings.Count(digest, "🎯"))
}

func TestBuildDigest_PluralForms(t *testing.T) {
	makeTasks := func(n int) []*model.Task {
		tasks := make([]*model.Task, n)
		for i := range tasks {
			tasks[i] = &model.Task{Text: "x", Priority: model.PriorityLow}
		}
		return tasks
	}

	assert.Contains(t, buildDigest(makeTasks(2)), "2 задачи")
	assert.Contains(t, buildDigest(makeTasks(11)), "11 задач")
	assert.Contains(t, buildDigest(makeTasks(21)), "21 задача")
}
