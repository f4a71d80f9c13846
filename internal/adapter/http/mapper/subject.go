package mapper

import (
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func ToSubjectItem(subject domain.Subject) dto.SubjectItem {
	return dto.SubjectItem{
		ID:        subject.ID,
		Name:      subject.Name,
		Color:     subject.Color,
		CreatedAt: subject.CreatedAt.Format(time.RFC3339),
	}
}

func ToSubjectItems(subjects []domain.Subject) []dto.SubjectItem {
	items := make([]dto.SubjectItem, 0, len(subjects))
	for _, subject := range subjects {
		items = append(items, ToSubjectItem(subject))
	}
	return items
}
