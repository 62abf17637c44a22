package mailer_test

import (
	"strings"
	"testing"
	"time"

	"smart-todo/pkg/mailer"
)

var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func TestTaskReminder(t *testing.T) {
	subject, body, err := mailer.TaskReminder("Finish report", testNow.AddDate(0, 0, 1), "urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Task Reminder: Finish report" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "Finish report") {
		t.Errorf("body missing task title: %s", body)
	}
	if !strings.Contains(body, "URGENT") {
		t.Errorf("body missing uppercased priority: %s", body)
	}
	if !strings.Contains(body, "#ff0000") {
		t.Errorf("urgent priority should use red accent: %s", body)
	}
}

func TestTaskReminderEscapesHTML(t *testing.T) {
	_, body, err := mailer.TaskReminder("<script>alert(1)</script>", testNow, "low")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Errorf("title was not escaped: %s", body)
	}
}

func TestTaskCompleted(t *testing.T) {
	subject, body, err := mailer.TaskCompleted("Clean desk", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Task Completed: Clean desk" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "May 1, 2024") {
		t.Errorf("body missing completion date: %s", body)
	}
}

func TestDailySummary(t *testing.T) {
	t.Run("With Tasks", func(t *testing.T) {
		subject, body, err := mailer.DailySummary(4, 3, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if subject != "Daily Summary - May 1, 2024" {
			t.Errorf("subject = %q", subject)
		}
		if !strings.Contains(body, "75%") {
			t.Errorf("body missing progress percentage: %s", body)
		}
	})

	t.Run("No Tasks", func(t *testing.T) {
		_, body, err := mailer.DailySummary(0, 0, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(body, "0%") {
			t.Errorf("empty report should show 0%%: %s", body)
		}
	})
}
