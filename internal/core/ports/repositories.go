package ports

import (
	"context"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

// Repositories hand back full snapshots per scope; there is no delta
// API. Backend failures surface as errors that callers log and report
// without retrying.

type TaskRepository interface {
	ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error)
	GetTask(ctx context.Context, scope domain.Scope, id string) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, scope domain.Scope, id string) error
}

type SubjectRepository interface {
	ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error)
	CreateSubject(ctx context.Context, subject domain.Subject) error
	DeleteSubject(ctx context.Context, scope domain.Scope, id string) error
}

type GoalRepository interface {
	ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error)
	GetGoal(ctx context.Context, scope domain.Scope, id string) (domain.Goal, error)
	CreateGoal(ctx context.Context, goal domain.Goal) error
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, scope domain.Scope, id string) error
}

type SessionRepository interface {
	ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error)
	CreateSession(ctx context.Context, session domain.StudySession) error
	DeleteSession(ctx context.Context, scope domain.Scope, id string) error
}
