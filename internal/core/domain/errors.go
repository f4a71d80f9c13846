package domain

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidInterval = errors.New("task end must be after start")
	ErrInvalidTarget   = errors.New("goal target minutes must be positive")

	ErrMalformedInsight = errors.New("insight response malformed")
	ErrInsightDisabled  = errors.New("insight client not configured")

	ErrNoActiveTimer   = errors.New("no active focus timer")
	ErrTimerRunning    = errors.New("focus timer already running")
	ErrTimerNotRunning = errors.New("focus timer not running")
)
