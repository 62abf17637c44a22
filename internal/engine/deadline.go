package engine

import (
	"time"

	"smart-todo/internal/model"
)

// SuggestDeadlines proposes exactly two candidate deadlines for the given
// priority tier, earlier option first. An unrecognized priority uses the
// low tier; estimatedMinutes <= 0 defaults to 60. Tasks estimated above
// 4 hours get both deadlines pushed out 2 days, with the reason amended.
func (e *Engine) SuggestDeadlines(priority model.Priority, estimatedMinutes int, now time.Time) []DeadlineSuggestion {
	if estimatedMinutes <= 0 {
		estimatedMinutes = defaultEstimatedMinutes
	}

	var suggestions []DeadlineSuggestion
	switch priority {
	case model.PriorityUrgent:
		suggestions = []DeadlineSuggestion{
			{Date: now, Label: "Today", Reason: "Urgent priority - immediate attention required", Confidence: 95},
			{Date: now.Add(4 * time.Hour), Label: "In 4 hours", Reason: "Quick turnaround for urgent tasks", Confidence: 90},
		}
	case model.PriorityHigh:
		suggestions = []DeadlineSuggestion{
			{Date: now.AddDate(0, 0, 1), Label: "Tomorrow", Reason: "High priority - schedule within 24 hours", Confidence: 90},
			{Date: now.AddDate(0, 0, 2), Label: "In 2 days", Reason: "Allows time for preparation", Confidence: 85},
		}
	case model.PriorityMedium:
		suggestions = []DeadlineSuggestion{
			{Date: now.AddDate(0, 0, 3), Label: "In 3 days", Reason: "Balanced timeframe for medium priority", Confidence: 85},
			{Date: now.AddDate(0, 0, 7), Label: "Next week", Reason: "Comfortable timeline for planning", Confidence: 80},
		}
	default:
		suggestions = []DeadlineSuggestion{
			{Date: now.AddDate(0, 0, 7), Label: "Next week", Reason: "Low priority - can be scheduled flexibly", Confidence: 75},
			{Date: now.AddDate(0, 0, 14), Label: "In 2 weeks", Reason: "Extended timeline for low priority tasks", Confidence: 70},
		}
	}

	if estimatedMinutes > complexTaskMinutes {
		for i := range suggestions {
			suggestions[i].Reason += complexTaskReasonSuffix
			suggestions[i].Date = suggestions[i].Date.AddDate(0, 0, complexTaskExtraDays)
		}
	}

	return suggestions
}
