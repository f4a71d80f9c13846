package ports

import (
	"context"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

type TaskService interface {
	ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error)
	CreateTask(ctx context.Context, scope domain.Scope, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, scope domain.Scope, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, scope domain.Scope, id string) error
}

type SubjectService interface {
	ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error)
	CreateSubject(ctx context.Context, scope domain.Scope, input domain.CreateSubjectInput) (domain.Subject, error)
	DeleteSubject(ctx context.Context, scope domain.Scope, id string) error
}

type GoalService interface {
	ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, scope domain.Scope, input domain.CreateGoalInput) (domain.Goal, error)
	UpdateGoal(ctx context.Context, scope domain.Scope, id string, input domain.UpdateGoalInput) (domain.Goal, error)
	DeleteGoal(ctx context.Context, scope domain.Scope, id string) error
}

type SessionService interface {
	ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error)
	// LogSession stores the session and broadcast-applies its duration
	// to every goal in the scope.
	LogSession(ctx context.Context, scope domain.Scope, input domain.CreateSessionInput) (domain.StudySession, error)
	DeleteSession(ctx context.Context, scope domain.Scope, id string) error
}

type PlannerService interface {
	WeekView(ctx context.Context, scope domain.Scope, ref time.Time) (schedule.WeekView, error)
	ExportICS(ctx context.Context, scope domain.Scope) (string, error)
}

type InsightService interface {
	Analyze(ctx context.Context, scope domain.Scope) (domain.Insight, error)
}

type FocusService interface {
	Start(ctx context.Context, scope domain.Scope, mode domain.FocusMode, subjectID string, taskID *string) (domain.FocusStatus, error)
	Pause(scope domain.Scope) (domain.FocusStatus, error)
	Resume(scope domain.Scope) (domain.FocusStatus, error)
	Reset(scope domain.Scope) domain.FocusStatus
	Status(scope domain.Scope) domain.FocusStatus
}
