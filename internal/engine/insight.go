package engine

import (
	"fmt"
	"time"

	"smart-todo/internal/model"
)

const noDueDateThreshold = 5

// GenerateInsights derives warning/suggestion/tip insights from aggregate
// task statistics. Each check appends at most one insight, in check order.
// An empty task collection yields no insights.
func (e *Engine) GenerateInsights(tasks []model.Task, now time.Time) []Insight {
	insights := make([]Insight, 0, 3)

	overdue := 0
	noDueDate := 0
	completed := 0
	for _, t := range tasks {
		if t.Overdue(now) {
			overdue++
		}
		if t.DueDate == nil && t.Status != model.StatusCompleted {
			noDueDate++
		}
		if t.Status == model.StatusCompleted {
			completed++
		}
	}

	if overdue > 0 {
		insights = append(insights, Insight{
			Kind:    InsightWarning,
			Message: fmt.Sprintf("You have %d overdue task(s). Consider rescheduling or prioritizing them.", overdue),
		})
	}

	if noDueDate > noDueDateThreshold {
		insights = append(insights, Insight{
			Kind:    InsightSuggestion,
			Message: fmt.Sprintf("%d tasks don't have due dates. Adding deadlines can improve completion rates.", noDueDate),
		})
	}

	// Guard against empty collections before computing the ratio.
	if len(tasks) > 0 && float64(completed)/float64(len(tasks)) > 0.8 {
		pct := int(float64(completed) / float64(len(tasks)) * 100)
		insights = append(insights, Insight{
			Kind:    InsightTip,
			Message: fmt.Sprintf("Great job! You've completed %d%% of your tasks. Keep up the momentum!", pct),
		})
	}

	return insights
}
