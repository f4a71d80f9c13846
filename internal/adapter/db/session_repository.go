package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

const listSessionsQuery = `
SELECT * FROM study_sessions WHERE scope = ? ORDER BY start_at;
`

const insertSessionQuery = `
INSERT INTO study_sessions (id, scope, subject_id, task_id, start_at, end_at, duration_minutes, created_at)
VALUES (:id, :scope, :subject_id, :task_id, :start_at, :end_at, :duration_minutes, :created_at);
`

const deleteSessionQuery = `
DELETE FROM study_sessions WHERE scope = ? AND id = ?;
`

type SessionRepository struct {
	db *sqlx.DB
}

type sessionRow struct {
	ID              string         `db:"id"`
	Scope           string         `db:"scope"`
	SubjectID       string         `db:"subject_id"`
	TaskID          sql.NullString `db:"task_id"`
	StartAt         time.Time      `db:"start_at"`
	EndAt           time.Time      `db:"end_at"`
	DurationMinutes int            `db:"duration_minutes"`
	CreatedAt       time.Time      `db:"created_at"`
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) ListSessions(ctx context.Context, scope domain.Scope) ([]domain.StudySession, error) {
	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, listSessionsQuery, scope); err != nil {
		return nil, err
	}

	sessions := make([]domain.StudySession, 0, len(rows))
	for _, row := range rows {
		session := domain.StudySession{
			ID:              row.ID,
			Scope:           domain.Scope(row.Scope),
			SubjectID:       row.SubjectID,
			StartAt:         row.StartAt,
			EndAt:           row.EndAt,
			DurationMinutes: row.DurationMinutes,
			CreatedAt:       row.CreatedAt,
		}
		if row.TaskID.Valid {
			value := row.TaskID.String
			session.TaskID = &value
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *SessionRepository) CreateSession(ctx context.Context, session domain.StudySession) error {
	row := sessionRow{
		ID:              session.ID,
		Scope:           string(session.Scope),
		SubjectID:       session.SubjectID,
		StartAt:         session.StartAt,
		EndAt:           session.EndAt,
		DurationMinutes: session.DurationMinutes,
		CreatedAt:       session.CreatedAt,
	}
	if session.TaskID != nil {
		row.TaskID = sql.NullString{String: *session.TaskID, Valid: true}
	}

	_, err := r.db.NamedExecContext(ctx, insertSessionQuery, row)
	return err
}

func (r *SessionRepository) DeleteSession(ctx context.Context, scope domain.Scope, id string) error {
	result, err := r.db.ExecContext(ctx, deleteSessionQuery, scope, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
