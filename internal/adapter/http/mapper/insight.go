package mapper

import (
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func ToInsightResponse(insight domain.Insight) dto.InsightResponse {
	suggestions := insight.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return dto.InsightResponse{
		Analysis:    insight.Analysis,
		Suggestions: suggestions,
		Quote:       insight.Quote,
	}
}
