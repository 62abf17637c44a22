package engine

import (
	"fmt"
	"strings"
)

// SuggestBreakdown decomposes a task into subtasks using keyword
// templates. The first template keyword found in title+description wins;
// without a template hit, writing-style tasks get a drafting plan and
// everything else a generic three-step plan.
func (e *Engine) SuggestBreakdown(title, description string) Breakdown {
	combined := strings.ToLower(title) + " " + strings.ToLower(description)

	var titles []string
	for _, tpl := range breakdownTemplates {
		if strings.Contains(combined, tpl.keyword) {
			titles = tpl.subtasks
			break
		}
	}
	if titles == nil {
		if strings.Contains(combined, "write") || strings.Contains(combined, "create") {
			titles = breakdownWriting
		} else {
			titles = breakdownGeneric
		}
	}

	subtasks := make([]Subtask, len(titles))
	for i, t := range titles {
		subtasks[i] = Subtask{Title: t}
	}

	return Breakdown{
		Subtasks:         subtasks,
		EstimatedMinutes: len(subtasks) * breakdownMinutesPerSubtask,
		Suggestion:       fmt.Sprintf("This task can be broken down into %d manageable steps.", len(subtasks)),
	}
}
