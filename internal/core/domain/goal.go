package domain

import "time"

type GoalPeriod string

const (
	GoalPeriodDaily  GoalPeriod = "daily"
	GoalPeriodWeekly GoalPeriod = "weekly"
)

// Goal tracks accumulated study minutes against a target. The period
// tag is informational: CurrentMinutes never resets automatically, only
// through an explicit update.
type Goal struct {
	ID             string
	Scope          Scope
	Title          string
	TargetMinutes  int
	CurrentMinutes int
	Period         GoalPeriod
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateGoalInput struct {
	Title         string
	TargetMinutes int
	Period        GoalPeriod
}

type UpdateGoalInput struct {
	Title          *string
	TargetMinutes  *int
	CurrentMinutes *int
	Period         *GoalPeriod
}
