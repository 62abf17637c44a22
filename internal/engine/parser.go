package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-todo/internal/model"
)

// reDuration matches the first "<number> hour/hr/minute/min" expression.
var reDuration = regexp.MustCompile(`(\d+)\s*(hour|hr|minute|min)s?`)

// reRemovePhrases strips every phrase that can trigger priority or
// relative-date detection when cleaning the title.
var reRemovePhrases = regexp.MustCompile(`(?i)\b(urgent|asap|high priority|low priority|today|tomorrow|next week|next month|important|critical)\b`)

// ParseTask extracts structured task attributes from free-form text.
// It never fails: when a signal is absent the documented default applies
// (medium priority, no tags, no due date, no duration, raw text title).
func (e *Engine) ParseTask(text string, now time.Time) ParsedDraft {
	lower := strings.ToLower(text)

	draft := ParsedDraft{
		Title:       cleanTitle(text),
		Priority:    detectPriority(lower),
		Tags:        detectTags(lower),
		Status:      model.StatusPending,
		AISuggested: true,
	}

	if due, ok := e.dates.Resolve(lower, now); ok {
		draft.DueDate = &due
	}

	if minutes, ok := detectDuration(lower); ok {
		draft.EstimatedMinutes = &minutes
	}

	return draft
}

// detectPriority tests keyword groups in precedence order; the first
// group with a hit wins. No signal means medium.
func detectPriority(lower string) model.Priority {
	for _, group := range priorityKeywords {
		if containsAny(lower, group.words) {
			return group.priority
		}
	}
	return model.PriorityMedium
}

// detectTags tests every tag group independently, in fixed order.
func detectTags(lower string) []model.Tag {
	var tags []model.Tag
	for _, group := range tagKeywords {
		if containsAny(lower, group.words) {
			tags = append(tags, group.tag)
		}
	}
	return tags
}

// detectDuration finds the first duration expression and converts it to
// minutes. Hours ("hour", "hr") are multiplied by 60.
func detectDuration(lower string) (int, bool) {
	m := reDuration.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if m[2] == "hour" || m[2] == "hr" {
		value *= 60
	}
	return value, true
}

// cleanTitle removes detected keyword phrases from the original-case text
// and collapses whitespace. An empty result falls back to the raw input.
func cleanTitle(text string) string {
	title := reRemovePhrases.ReplaceAllString(text, "")
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return text
	}
	return title
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
