package callbacks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-manager-bot/internal/controller/callbacks/common"
	"todo-manager-bot/internal/model"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Action
	}{
		{"ignore", "ignore", Action{Kind: ActionIgnore}},
		{"priority high", "priority_high", Action{Kind: ActionPriority, Priority: model.PriorityHigh}},
		{"priority medium", "priority_medium", Action{Kind: ActionPriority, Priority: model.PriorityMedium}},
		{"priority low", "priority_low", Action{Kind: ActionPriority, Priority: model.PriorityLow}},
		{"date", "date_2024-02-29", Action{Kind: ActionDate, Date: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)}},
		{"done", "done_42", Action{Kind: ActionDone, TaskID: 42}},
		{"delete", "delete_7", Action{Kind: ActionDelete, TaskID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAction_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown prefix", "subscribe_5"},
		{"empty", ""},
		{"priority unknown value", "priority_urgent"},
		{"priority empty payload", "priority_"},
		{"date garbage", "date_tomorrow"},
		{"done non-numeric", "done_abc"},
		{"delete empty", "delete_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAction(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidFormat)
		})
	}
}
