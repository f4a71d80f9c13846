package schedule

import (
	"math"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

// ProgressPercent returns the goal's clamped completion percentage in
// [0, 100]. Callers guarantee TargetMinutes > 0 (enforced at goal
// creation).
func ProgressPercent(goal domain.Goal) int {
	ratio := float64(goal.CurrentMinutes) / float64(goal.TargetMinutes)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// ApplySession adds the session's duration to every goal in the set and
// returns the updated copies. The add is a deliberate broadcast: no
// filtering by subject or period, and applying the same session twice
// adds twice.
func ApplySession(session domain.StudySession, goals []domain.Goal) []domain.Goal {
	updated := make([]domain.Goal, len(goals))
	for i, goal := range goals {
		goal.CurrentMinutes += session.DurationMinutes
		updated[i] = goal
	}
	return updated
}
