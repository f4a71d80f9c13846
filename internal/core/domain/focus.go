package domain

import "time"

type FocusMode string

const (
	FocusModeStudy FocusMode = "study"
	FocusModeBreak FocusMode = "break"
)

type FocusState string

const (
	FocusStateIdle    FocusState = "idle"
	FocusStateRunning FocusState = "running"
	FocusStatePaused  FocusState = "paused"
)

// FocusStatus is a point-in-time snapshot of a scope's countdown timer.
type FocusStatus struct {
	State            FocusState
	Mode             FocusMode
	SubjectID        string
	TaskID           *string
	RemainingSeconds int
	StartedAt        *time.Time
}
