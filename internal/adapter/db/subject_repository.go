package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

const listSubjectsQuery = `
SELECT * FROM subjects WHERE scope = ? ORDER BY name;
`

const insertSubjectQuery = `
INSERT INTO subjects (id, scope, name, color, created_at)
VALUES (:id, :scope, :name, :color, :created_at);
`

const deleteSubjectQuery = `
DELETE FROM subjects WHERE scope = ? AND id = ?;
`

type SubjectRepository struct {
	db *sqlx.DB
}

type subjectRow struct {
	ID        string    `db:"id"`
	Scope     string    `db:"scope"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.SubjectRepository = (*SubjectRepository)(nil)

func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error) {
	var rows []subjectRow
	if err := r.db.SelectContext(ctx, &rows, listSubjectsQuery, scope); err != nil {
		return nil, err
	}

	subjects := make([]domain.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, domain.Subject{
			ID:        row.ID,
			Scope:     domain.Scope(row.Scope),
			Name:      row.Name,
			Color:     row.Color,
			CreatedAt: row.CreatedAt,
		})
	}
	return subjects, nil
}

func (r *SubjectRepository) CreateSubject(ctx context.Context, subject domain.Subject) error {
	_, err := r.db.NamedExecContext(ctx, insertSubjectQuery, subjectRow{
		ID:        subject.ID,
		Scope:     string(subject.Scope),
		Name:      subject.Name,
		Color:     subject.Color,
		CreatedAt: subject.CreatedAt,
	})
	return err
}

func (r *SubjectRepository) DeleteSubject(ctx context.Context, scope domain.Scope, id string) error {
	result, err := r.db.ExecContext(ctx, deleteSubjectQuery, scope, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubjectNotFound
	}
	return nil
}
