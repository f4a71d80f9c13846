package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
)

type SessionService struct {
	sessionRepository ports.SessionRepository
	goalRepository    ports.GoalRepository
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(sessionRepository ports.SessionRepository, goalRepository ports.GoalRepository) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		goalRepository:    goalRepository,
	}
}

func (s *SessionService) ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error) {
	return s.sessionRepository.ListSessions(ctx, scope)
}

// LogSession stores the session and reconciles goals: the duration is
// broadcast-added to every goal in the scope, matching or not. Goal
// updates that fail are logged and skipped; successful ones are not
// rolled back.
func (s *SessionService) LogSession(ctx context.Context, scope domain.Scope, input domain.CreateSessionInput) (domain.StudySession, error) {
	session := domain.StudySession{
		ID:              uuid.NewString(),
		Scope:           scope,
		SubjectID:       input.SubjectID,
		TaskID:          input.TaskID,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		DurationMinutes: input.DurationMinutes,
		CreatedAt:       time.Now(),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return domain.StudySession{}, err
	}

	goals, err := s.goalRepository.ListGoals(ctx, scope)
	if err != nil {
		zap.L().Error("failed to list goals for session reconciliation",
			zap.String("session_id", session.ID), zap.Error(err))
		return session, err
	}

	for _, goal := range schedule.ApplySession(session, goals) {
		if err := s.goalRepository.UpdateGoal(ctx, goal); err != nil {
			zap.L().Error("failed to apply session to goal",
				zap.String("session_id", session.ID),
				zap.String("goal_id", goal.ID),
				zap.Error(err))
		}
	}

	return session, nil
}

// DeleteSession removes the record only; goal totals are never
// recomputed retroactively.
func (s *SessionService) DeleteSession(ctx context.Context, scope domain.Scope, id string) error {
	return s.sessionRepository.DeleteSession(ctx, scope, id)
}
