package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(`<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Task Reminder</h2>
    <p>You have a task coming up:</p>
    <div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px;">
      <h3>{{.Title}}</h3>
      <p><strong>Due Date:</strong> {{.DueDate}}</p>
      <p><strong>Priority:</strong> <span style="color: {{.PriorityColor}};">{{.Priority}}</span></p>
    </div>
    <p style="margin-top: 20px; color: #666;">
      Don't forget to complete this task!
    </p>
  </body>
</html>`))

var completedTmpl = template.Must(template.New("completed").Parse(`<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Congratulations!</h2>
    <p>You have successfully completed a task:</p>
    <div style="background-color: #e8f5e9; padding: 15px; border-radius: 5px; border-left: 4px solid #4caf50;">
      <h3 style="color: #4caf50;">{{.Title}}</h3>
      <p>Completed on: {{.CompletedAt}}</p>
    </div>
    <p style="margin-top: 20px; color: #666;">
      Great job! Keep up the productivity!
    </p>
  </body>
</html>`))

var summaryTmpl = template.Must(template.New("summary").Parse(`<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Your Daily Summary</h2>
    <p>Here's your productivity report for today:</p>
    <div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px;">
      <p><strong>Total Tasks:</strong> {{.Total}}</p>
      <p><strong>Completed:</strong> {{.Completed}}</p>
      <p><strong>Progress:</strong> {{.Progress}}%</p>
    </div>
    <p style="margin-top: 20px; color: #666;">
      Keep pushing to achieve your goals!
    </p>
  </body>
</html>`))

// priorityColor maps a task priority to the accent color used in mails.
func priorityColor(priority string) string {
	switch priority {
	case "urgent":
		return "#ff0000"
	case "high":
		return "#ff9900"
	default:
		return "#0099ff"
	}
}

// TaskReminder renders the reminder subject and HTML body for a task.
func TaskReminder(title string, dueDate time.Time, priority string) (string, string, error) {
	subject := fmt.Sprintf("Task Reminder: %s", title)
	var b strings.Builder
	err := reminderTmpl.Execute(&b, map[string]string{
		"Title":         title,
		"DueDate":       dueDate.Format("January 2, 2006 at 3:04 PM"),
		"Priority":      strings.ToUpper(priority),
		"PriorityColor": priorityColor(priority),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render reminder template: %w", err)
	}
	return subject, b.String(), nil
}

// TaskCompleted renders the completion subject and HTML body for a task.
func TaskCompleted(title string, completedAt time.Time) (string, string, error) {
	subject := fmt.Sprintf("Task Completed: %s", title)
	var b strings.Builder
	err := completedTmpl.Execute(&b, map[string]string{
		"Title":       title,
		"CompletedAt": completedAt.Format("January 2, 2006 at 3:04 PM"),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render completion template: %w", err)
	}
	return subject, b.String(), nil
}

// DailySummary renders the daily report subject and HTML body.
func DailySummary(total, completed int, now time.Time) (string, string, error) {
	subject := fmt.Sprintf("Daily Summary - %s", now.Format("January 2, 2006"))
	progress := 0
	if total > 0 {
		progress = completed * 100 / total
	}
	var b strings.Builder
	err := summaryTmpl.Execute(&b, map[string]int{
		"Total":     total,
		"Completed": completed,
		"Progress":  progress,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render summary template: %w", err)
	}
	return subject, b.String(), nil
}
