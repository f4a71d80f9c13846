package localstore

import (
	"context"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

// The four repositories below share the blob store: each operation
// loads the full collection snapshot, mutates it, and writes it back
// under the store mutex. Last write wins, matching the snapshot
// semantics remote backends provide.

type TaskStore struct{ store *Store }

var _ ports.TaskRepository = (*TaskStore)(nil)

func NewTaskStore(store *Store) *TaskStore { return &TaskStore{store: store} }

func (s *TaskStore) ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.list(ctx, scope)
}

func (s *TaskStore) list(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.store.load(ctx, collectionName("tasks", scope), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) GetTask(ctx context.Context, scope domain.Scope, id string) (domain.Task, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tasks, err := s.list(ctx, scope)
	if err != nil {
		return domain.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *TaskStore) CreateTask(ctx context.Context, task domain.Task) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tasks, err := s.list(ctx, task.Scope)
	if err != nil {
		return err
	}
	tasks = append(tasks, task)
	return s.store.save(ctx, collectionName("tasks", task.Scope), tasks)
}

func (s *TaskStore) UpdateTask(ctx context.Context, task domain.Task) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tasks, err := s.list(ctx, task.Scope)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			return s.store.save(ctx, collectionName("tasks", task.Scope), tasks)
		}
	}
	return domain.ErrTaskNotFound
}

func (s *TaskStore) DeleteTask(ctx context.Context, scope domain.Scope, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tasks, err := s.list(ctx, scope)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return s.store.save(ctx, collectionName("tasks", scope), tasks)
		}
	}
	return domain.ErrTaskNotFound
}

type SubjectStore struct{ store *Store }

var _ ports.SubjectRepository = (*SubjectStore)(nil)

func NewSubjectStore(store *Store) *SubjectStore { return &SubjectStore{store: store} }

func (s *SubjectStore) ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.list(ctx, scope)
}

func (s *SubjectStore) list(ctx context.Context, scope domain.Scope) ([]domain.Subject, error) {
	var subjects []domain.Subject
	if err := s.store.load(ctx, collectionName("subjects", scope), &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *SubjectStore) CreateSubject(ctx context.Context, subject domain.Subject) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	subjects, err := s.list(ctx, subject.Scope)
	if err != nil {
		return err
	}
	subjects = append(subjects, subject)
	return s.store.save(ctx, collectionName("subjects", subject.Scope), subjects)
}

func (s *SubjectStore) DeleteSubject(ctx context.Context, scope domain.Scope, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	subjects, err := s.list(ctx, scope)
	if err != nil {
		return err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			subjects = append(subjects[:i], subjects[i+1:]...)
			return s.store.save(ctx, collectionName("subjects", scope), subjects)
		}
	}
	return domain.ErrSubjectNotFound
}

type GoalStore struct{ store *Store }

var _ ports.GoalRepository = (*GoalStore)(nil)

func NewGoalStore(store *Store) *GoalStore { return &GoalStore{store: store} }

func (s *GoalStore) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.list(ctx, scope)
}

func (s *GoalStore) list(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	var goals []domain.Goal
	if err := s.store.load(ctx, collectionName("goals", scope), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GoalStore) GetGoal(ctx context.Context, scope domain.Scope, id string) (domain.Goal, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.list(ctx, scope)
	if err != nil {
		return domain.Goal{}, err
	}
	for _, goal := range goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return domain.Goal{}, domain.ErrGoalNotFound
}

func (s *GoalStore) CreateGoal(ctx context.Context, goal domain.Goal) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.list(ctx, goal.Scope)
	if err != nil {
		return err
	}
	goals = append(goals, goal)
	return s.store.save(ctx, collectionName("goals", goal.Scope), goals)
}

func (s *GoalStore) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.list(ctx, goal.Scope)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == goal.ID {
			goals[i] = goal
			return s.store.save(ctx, collectionName("goals", goal.Scope), goals)
		}
	}
	return domain.ErrGoalNotFound
}

func (s *GoalStore) DeleteGoal(ctx context.Context, scope domain.Scope, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	goals, err := s.list(ctx, scope)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == id {
			goals = append(goals[:i], goals[i+1:]...)
			return s.store.save(ctx, collectionName("goals", scope), goals)
		}
	}
	return domain.ErrGoalNotFound
}

type SessionStore struct{ store *Store }

var _ ports.SessionRepository = (*SessionStore)(nil)

func NewSessionStore(store *Store) *SessionStore { return &SessionStore{store: store} }

func (s *SessionStore) ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.list(ctx, scope)
}

func (s *SessionStore) list(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error) {
	var sessions []domain.StudySession
	if err := s.store.load(ctx, collectionName("sessions", scope), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionStore) CreateSession(ctx context.Context, session domain.StudySession) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	sessions, err := s.list(ctx, session.Scope)
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	return s.store.save(ctx, collectionName("sessions", session.Scope), sessions)
}

func (s *SessionStore) DeleteSession(ctx context.Context, scope domain.Scope, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	sessions, err := s.list(ctx, scope)
	if err != nil {
		return err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			sessions = append(sessions[:i], sessions[i+1:]...)
			return s.store.save(ctx, collectionName("sessions", scope), sessions)
		}
	}
	return domain.ErrSessionNotFound
}
