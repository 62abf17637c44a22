package engine

import (
	"sort"
	"time"

	"smart-todo/internal/model"
)

// SuggestSchedule proposes up to 3 candidate times for working on a task,
// ranked by score descending. Candidates come from the priority rule plus
// one slot per study/work tag; ties keep generation order.
func (e *Engine) SuggestSchedule(priority model.Priority, tags []model.Tag, now time.Time) []ScheduleSuggestion {
	suggestions := make([]ScheduleSuggestion, 0, 3)

	switch priority {
	case model.PriorityUrgent:
		suggestions = append(suggestions, ScheduleSuggestion{
			Time:   now,
			Reason: reasonScheduleImmediately,
			Score:  scoreImmediate,
		})
	case model.PriorityHigh:
		suggestions = append(suggestions, ScheduleSuggestion{
			Time:   now.Add(2 * time.Hour),
			Reason: reasonScheduleWithinHours,
			Score:  scoreWithinHours,
		})
	default:
		suggestions = append(suggestions, ScheduleSuggestion{
			Time:   now.AddDate(0, 0, 1),
			Reason: reasonScheduleTomorrow,
			Score:  scoreNextDay,
		})
	}

	if hasTag(tags, model.TagStudy) {
		suggestions = append(suggestions, ScheduleSuggestion{
			Time:   slotAt(now, studySlotHour),
			Reason: reasonStudyMorning,
			Score:  scoreStudyMorning,
		})
	}

	if hasTag(tags, model.TagWork) {
		suggestions = append(suggestions, ScheduleSuggestion{
			Time:   slotAt(now, workSlotHour),
			Reason: reasonWorkHours,
			Score:  scoreWorkHours,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > maxScheduleSuggestions {
		suggestions = suggestions[:maxScheduleSuggestions]
	}
	return suggestions
}

// slotAt returns today's slot at the given hour, rolled to tomorrow when
// that time has already passed.
func slotAt(now time.Time, hour int) time.Time {
	slot := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if slot.Before(now) {
		slot = slot.AddDate(0, 0, 1)
	}
	return slot
}

func hasTag(tags []model.Tag, tag model.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
