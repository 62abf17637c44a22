package engine_test

import (
	"testing"
	"time"

	"smart-todo/internal/model"
)

func TestReminderOffsets(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		priority model.Priority
		want     []int
	}{
		{"Urgent", model.PriorityUrgent, []int{5, 15, 60}},
		{"High", model.PriorityHigh, []int{15, 60, 240}},
		{"Medium", model.PriorityMedium, []int{30, 120, 1440}},
		{"Low", model.PriorityLow, []int{60, 1440}},
		{"Unknown falls back to medium", model.Priority("unknown"), []int{30, 120, 1440}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ReminderOffsets(tt.priority)
			if len(got) != len(tt.want) {
				t.Fatalf("ReminderOffsets(%q) = %v, want %v", tt.priority, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("offset[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReminderOffsetsReturnsCopy(t *testing.T) {
	e := newTestEngine(t)

	first := e.ReminderOffsets(model.PriorityUrgent)
	first[0] = 999
	second := e.ReminderOffsets(model.PriorityUrgent)
	if second[0] != 5 {
		t.Errorf("mutating a returned slice leaked into the table: %v", second)
	}
}

func TestRemindersFor(t *testing.T) {
	e := newTestEngine(t)

	due := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	got := e.RemindersFor(model.PriorityUrgent, due)

	want := []time.Time{
		due.Add(-5 * time.Minute),
		due.Add(-15 * time.Minute),
		due.Add(-60 * time.Minute),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d reminders, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("reminder[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
