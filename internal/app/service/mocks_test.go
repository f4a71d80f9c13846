package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	args := m.Called(ctx, scope)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, scope domain.Scope, id string) (domain.Task, error) {
	args := m.Called(ctx, scope, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, scope domain.Scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

type subjectRepositoryMock struct {
	mock.Mock
}

func (m *subjectRepositoryMock) ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error) {
	args := m.Called(ctx, scope)

	var subjects []domain.Subject
	if value := args.Get(0); value != nil {
		subjects = value.([]domain.Subject)
	}
	return subjects, args.Error(1)
}

func (m *subjectRepositoryMock) CreateSubject(ctx context.Context, subject domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *subjectRepositoryMock) DeleteSubject(ctx context.Context, scope domain.Scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

type goalRepositoryMock struct {
	mock.Mock
}

func (m *goalRepositoryMock) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	args := m.Called(ctx, scope)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalRepositoryMock) GetGoal(ctx context.Context, scope domain.Scope, id string) (domain.Goal, error) {
	args := m.Called(ctx, scope, id)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalRepositoryMock) CreateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *goalRepositoryMock) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *goalRepositoryMock) DeleteGoal(ctx context.Context, scope domain.Scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

type sessionRepositoryMock struct {
	mock.Mock
}

func (m *sessionRepositoryMock) ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error) {
	args := m.Called(ctx, scope)

	var sessions []domain.StudySession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.StudySession)
	}
	return sessions, args.Error(1)
}

func (m *sessionRepositoryMock) CreateSession(ctx context.Context, session domain.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *sessionRepositoryMock) DeleteSession(ctx context.Context, scope domain.Scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}
