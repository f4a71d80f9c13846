package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

const listGoalsQuery = `
SELECT * FROM goals WHERE scope = ? ORDER BY created_at;
`

const getGoalQuery = `
SELECT * FROM goals WHERE scope = ? AND id = ?;
`

const insertGoalQuery = `
INSERT INTO goals (id, scope, title, target_minutes, current_minutes, period, created_at, updated_at)
VALUES (:id, :scope, :title, :target_minutes, :current_minutes, :period, :created_at, :updated_at);
`

const updateGoalQuery = `
UPDATE goals
SET title = :title, target_minutes = :target_minutes, current_minutes = :current_minutes,
    period = :period, updated_at = :updated_at
WHERE scope = :scope AND id = :id;
`

const deleteGoalQuery = `
DELETE FROM goals WHERE scope = ? AND id = ?;
`

type GoalRepository struct {
	db *sqlx.DB
}

type goalRow struct {
	ID             string    `db:"id"`
	Scope          string    `db:"scope"`
	Title          string    `db:"title"`
	TargetMinutes  int       `db:"target_minutes"`
	CurrentMinutes int       `db:"current_minutes"`
	Period         string    `db:"period"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

var _ ports.GoalRepository = (*GoalRepository)(nil)

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	var rows []goalRow
	if err := r.db.SelectContext(ctx, &rows, listGoalsQuery, scope); err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, mapGoalRowToDomainGoal(row))
	}
	return goals, nil
}

func (r *GoalRepository) GetGoal(ctx context.Context, scope domain.Scope, id string) (domain.Goal, error) {
	var row goalRow
	if err := r.db.GetContext(ctx, &row, getGoalQuery, scope, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Goal{}, domain.ErrGoalNotFound
		}
		return domain.Goal{}, err
	}
	return mapGoalRowToDomainGoal(row), nil
}

func (r *GoalRepository) CreateGoal(ctx context.Context, goal domain.Goal) error {
	_, err := r.db.NamedExecContext(ctx, insertGoalQuery, mapDomainGoalToRow(goal))
	return err
}

func (r *GoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	result, err := r.db.NamedExecContext(ctx, updateGoalQuery, mapDomainGoalToRow(goal))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) DeleteGoal(ctx context.Context, scope domain.Scope, id string) error {
	result, err := r.db.ExecContext(ctx, deleteGoalQuery, scope, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func mapGoalRowToDomainGoal(row goalRow) domain.Goal {
	return domain.Goal{
		ID:             row.ID,
		Scope:          domain.Scope(row.Scope),
		Title:          row.Title,
		TargetMinutes:  row.TargetMinutes,
		CurrentMinutes: row.CurrentMinutes,
		Period:         domain.GoalPeriod(row.Period),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapDomainGoalToRow(goal domain.Goal) goalRow {
	return goalRow{
		ID:             goal.ID,
		Scope:          string(goal.Scope),
		Title:          goal.Title,
		TargetMinutes:  goal.TargetMinutes,
		CurrentMinutes: goal.CurrentMinutes,
		Period:         string(goal.Period),
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
