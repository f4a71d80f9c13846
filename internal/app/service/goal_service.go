package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

type GoalService struct {
	goalRepository ports.GoalRepository
}

var _ ports.GoalService = (*GoalService)(nil)

func NewGoalService(goalRepository ports.GoalRepository) *GoalService {
	return &GoalService{goalRepository: goalRepository}
}

func (s *GoalService) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	return s.goalRepository.ListGoals(ctx, scope)
}

func (s *GoalService) CreateGoal(ctx context.Context, scope domain.Scope, input domain.CreateGoalInput) (domain.Goal, error) {
	if input.TargetMinutes <= 0 {
		return domain.Goal{}, domain.ErrInvalidTarget
	}

	now := time.Now()
	goal := domain.Goal{
		ID:            uuid.NewString(),
		Scope:         scope,
		Title:         input.Title,
		TargetMinutes: input.TargetMinutes,
		Period:        input.Period,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.goalRepository.CreateGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal is also the manual-reset path: accumulated minutes never
// roll over on their own, a client zeroes CurrentMinutes explicitly.
func (s *GoalService) UpdateGoal(ctx context.Context, scope domain.Scope, id string, input domain.UpdateGoalInput) (domain.Goal, error) {
	goal, err := s.goalRepository.GetGoal(ctx, scope, id)
	if err != nil {
		return domain.Goal{}, err
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.TargetMinutes != nil {
		if *input.TargetMinutes <= 0 {
			return domain.Goal{}, domain.ErrInvalidTarget
		}
		goal.TargetMinutes = *input.TargetMinutes
	}
	if input.CurrentMinutes != nil {
		goal.CurrentMinutes = *input.CurrentMinutes
	}
	if input.Period != nil {
		goal.Period = *input.Period
	}

	goal.UpdatedAt = time.Now()
	if err := s.goalRepository.UpdateGoal(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, scope domain.Scope, id string) error {
	return s.goalRepository.DeleteGoal(ctx, scope, id)
}
