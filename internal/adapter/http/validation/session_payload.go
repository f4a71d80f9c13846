package validation

import (
	"errors"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

var ErrInvalidSessionPayload = errors.New("invalid session payload")

func BuildCreateSessionInput(req dto.CreateSessionRequest) (domain.CreateSessionInput, error) {
	startAt, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return domain.CreateSessionInput{}, ErrInvalidSessionPayload
	}

	endAt, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return domain.CreateSessionInput{}, ErrInvalidSessionPayload
	}

	if !endAt.After(startAt) {
		return domain.CreateSessionInput{}, ErrInvalidSessionPayload
	}

	return domain.CreateSessionInput{
		SubjectID:       req.SubjectID,
		TaskID:          req.TaskID,
		StartAt:         startAt,
		EndAt:           endAt,
		DurationMinutes: req.DurationMinutes,
	}, nil
}
