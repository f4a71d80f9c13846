package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// RecurrenceRule describes how a task repeats. DaysOfWeek uses
// 0 = Sunday .. 6 = Saturday and is only meaningful for weekly rules.
// EndDate is an inclusive day bound after which no occurrences are
// generated.
type RecurrenceRule struct {
	Type       RecurrenceType
	DaysOfWeek []int
	EndDate    *time.Time
}

// Task is a schedule template. StartAt/EndAt describe the first
// occurrence; for recurring tasks the weekday and time of day derived
// from StartAt anchor every generated occurrence.
type Task struct {
	ID         string
	Scope      Scope
	SubjectID  string
	Title      string
	StartAt    time.Time
	EndAt      time.Time
	Completed  bool
	Priority   Priority
	Notes      *string
	Recurrence *RecurrenceRule
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Recurs reports whether the task carries an effective recurrence rule.
func (t Task) Recurs() bool {
	return t.Recurrence != nil && t.Recurrence.Type != RecurrenceNone
}

// Duration is the canonical occurrence length taken from the template.
func (t Task) Duration() time.Duration {
	return t.EndAt.Sub(t.StartAt)
}

type CreateTaskInput struct {
	SubjectID  string
	Title      string
	StartAt    time.Time
	EndAt      time.Time
	Completed  bool
	Priority   Priority
	Notes      *string
	Recurrence *RecurrenceRule
}

type UpdateTaskInput struct {
	SubjectID     *string
	Title         *string
	StartAt       *time.Time
	EndAt         *time.Time
	Completed     *bool
	Priority      *Priority
	Notes         *string
	NotesSet      bool
	Recurrence    *RecurrenceRule
	RecurrenceSet bool
}
