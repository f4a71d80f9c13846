package domain

import "time"

// StudySession records one completed block of focused study. Sessions
// are immutable once logged; DurationMinutes is supplied by the caller
// and is not recomputed from the instant pair.
type StudySession struct {
	ID              string
	Scope           Scope
	SubjectID       string
	TaskID          *string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

type CreateSessionInput struct {
	SubjectID       string
	TaskID          *string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
}
