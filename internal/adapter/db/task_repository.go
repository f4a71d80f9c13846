package db

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

const listTasksQuery = `
SELECT * FROM tasks WHERE scope = ? ORDER BY start_at;
`

const getTaskQuery = `
SELECT * FROM tasks WHERE scope = ? AND id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, scope, subject_id, title, start_at, end_at, completed, priority, notes,
                   recur_type, recur_days, recur_end_date, created_at, updated_at)
VALUES (:id, :scope, :subject_id, :title, :start_at, :end_at, :completed, :priority, :notes,
        :recur_type, :recur_days, :recur_end_date, :created_at, :updated_at);
`

const updateTaskQuery = `
UPDATE tasks
SET subject_id = :subject_id, title = :title, start_at = :start_at, end_at = :end_at,
    completed = :completed, priority = :priority, notes = :notes,
    recur_type = :recur_type, recur_days = :recur_days, recur_end_date = :recur_end_date,
    updated_at = :updated_at
WHERE scope = :scope AND id = :id;
`

const deleteTaskQuery = `
DELETE FROM tasks WHERE scope = ? AND id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           string         `db:"id"`
	Scope        string         `db:"scope"`
	SubjectID    string         `db:"subject_id"`
	Title        string         `db:"title"`
	StartAt      time.Time      `db:"start_at"`
	EndAt        time.Time      `db:"end_at"`
	Completed    bool           `db:"completed"`
	Priority     string         `db:"priority"`
	Notes        sql.NullString `db:"notes"`
	RecurType    sql.NullString `db:"recur_type"`
	RecurDays    sql.NullString `db:"recur_days"`
	RecurEndDate sql.NullTime   `db:"recur_end_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, scope domain.Scope) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, scope); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, scope domain.Scope, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, scope, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task))
	return err
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	result, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, scope domain.Scope, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, scope, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Scope:     domain.Scope(row.Scope),
		SubjectID: row.SubjectID,
		Title:     row.Title,
		StartAt:   row.StartAt,
		EndAt:     row.EndAt,
		Completed: row.Completed,
		Priority:  domain.Priority(row.Priority),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}

	if row.RecurType.Valid && row.RecurType.String != string(domain.RecurrenceNone) {
		rule := &domain.RecurrenceRule{
			Type:       domain.RecurrenceType(row.RecurType.String),
			DaysOfWeek: parseRecurDays(row.RecurDays.String),
		}
		if row.RecurEndDate.Valid {
			value := row.RecurEndDate.Time
			rule.EndDate = &value
		}
		task.Recurrence = rule
	}

	return task
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:        task.ID,
		Scope:     string(task.Scope),
		SubjectID: task.SubjectID,
		Title:     task.Title,
		StartAt:   task.StartAt,
		EndAt:     task.EndAt,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}

	if task.Notes != nil {
		row.Notes = sql.NullString{String: *task.Notes, Valid: true}
	}

	if task.Recurrence != nil {
		row.RecurType = sql.NullString{String: string(task.Recurrence.Type), Valid: true}
		row.RecurDays = sql.NullString{String: formatRecurDays(task.Recurrence.DaysOfWeek), Valid: true}
		if task.Recurrence.EndDate != nil {
			row.RecurEndDate = sql.NullTime{Time: *task.Recurrence.EndDate, Valid: true}
		}
	}

	return row
}

// recur_days is stored as a comma-separated weekday list ("1,3,5").
// Unparsable entries are dropped instead of failing the read.
func parseRecurDays(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var days []int
	for _, part := range strings.Split(raw, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func formatRecurDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, strconv.Itoa(day))
	}
	return strings.Join(parts, ",")
}
