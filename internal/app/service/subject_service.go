package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

type SubjectService struct {
	subjectRepository ports.SubjectRepository
}

var _ ports.SubjectService = (*SubjectService)(nil)

func NewSubjectService(subjectRepository ports.SubjectRepository) *SubjectService {
	return &SubjectService{subjectRepository: subjectRepository}
}

func (s *SubjectService) ListSubjects(ctx context.Context, scope domain.Scope) ([]domain.Subject, error) {
	return s.subjectRepository.ListSubjects(ctx, scope)
}

func (s *SubjectService) CreateSubject(ctx context.Context, scope domain.Scope, input domain.CreateSubjectInput) (domain.Subject, error) {
	subject := domain.Subject{
		ID:        uuid.NewString(),
		Scope:     scope,
		Name:      input.Name,
		Color:     input.Color,
		CreatedAt: time.Now(),
	}

	if err := s.subjectRepository.CreateSubject(ctx, subject); err != nil {
		return domain.Subject{}, err
	}
	return subject, nil
}

// DeleteSubject removes the subject only. Tasks and sessions keep their
// reference and render with the fallback color.
func (s *SubjectService) DeleteSubject(ctx context.Context, scope domain.Scope, id string) error {
	return s.subjectRepository.DeleteSubject(ctx, scope, id)
}
