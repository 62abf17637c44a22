package engine

import "smart-todo/internal/model"

// priorityKeywords lists priority signal groups in precedence order:
// the first group with a hit wins, later groups are not consulted.
var priorityKeywords = []struct {
	priority model.Priority
	words    []string
}{
	{model.PriorityUrgent, []string{"urgent", "asap", "critical"}},
	{model.PriorityHigh, []string{"high priority", "important"}},
	{model.PriorityLow, []string{"low priority", "minor"}},
}

// tagKeywords maps each tag to its trigger words. Groups are tested
// independently in this fixed order; tags are not mutually exclusive.
var tagKeywords = []struct {
	tag   model.Tag
	words []string
}{
	{model.TagStudy, []string{"study", "exam", "homework", "assignment"}},
	{model.TagWork, []string{"work", "meeting", "project", "presentation"}},
	{model.TagPersonal, []string{"personal", "home", "family"}},
	{model.TagHealth, []string{"health", "exercise", "gym", "workout"}},
}

// Schedule scorer tables.
const (
	scoreImmediate    = 100
	scoreWithinHours  = 90
	scoreNextDay      = 70
	scoreStudyMorning = 85
	scoreWorkHours    = 80

	studySlotHour = 9  // 09:00 — fresh-mind slot for study tasks
	workSlotHour  = 10 // 10:00 — standard working hours
)

const (
	reasonScheduleImmediately = "High priority task - schedule immediately"
	reasonScheduleWithinHours = "High priority - schedule within 2 hours"
	reasonScheduleTomorrow    = "Normal priority - schedule for tomorrow"
	reasonStudyMorning        = "Study tasks are best done in the morning when mind is fresh"
	reasonWorkHours           = "Work tasks fit best during standard working hours"

	maxScheduleSuggestions = 3
)

// Deadline generator: a complex task pushes both deadlines out.
const (
	complexTaskMinutes      = 240
	complexTaskExtraDays    = 2
	complexTaskReasonSuffix = " (Complex task requires extra time)"

	defaultEstimatedMinutes = 60
)

// reminderOffsets holds the minutes-before-due reminder ladder per tier.
// An unrecognized priority falls back to the medium ladder.
var reminderOffsets = map[model.Priority][]int{
	model.PriorityUrgent: {5, 15, 60},
	model.PriorityHigh:   {15, 60, 240},
	model.PriorityMedium: {30, 120, 1440},
	model.PriorityLow:    {60, 1440},
}

// breakdownTemplates maps a trigger keyword to a subtask plan. Checked in
// order; the first keyword found in title+description wins.
var breakdownTemplates = []struct {
	keyword  string
	subtasks []string
}{
	{"project", []string{"Research and planning", "Design phase", "Implementation", "Testing", "Documentation"}},
	{"study", []string{"Read materials", "Take notes", "Create summary", "Practice problems", "Review"}},
	{"presentation", []string{"Research topic", "Create outline", "Design slides", "Practice delivery", "Prepare Q&A"}},
	{"report", []string{"Gather data", "Outline structure", "Write draft", "Review and edit", "Final formatting"}},
	{"exam", []string{"Review syllabus", "Study notes", "Practice questions", "Create cheat sheet", "Mock test"}},
}

var breakdownWriting = []string{
	"Research and gather information",
	"Create outline or plan",
	"Complete first draft",
	"Review and revise",
}

var breakdownGeneric = []string{
	"Plan the approach",
	"Execute main tasks",
	"Review and finalize",
}

const breakdownMinutesPerSubtask = 30
