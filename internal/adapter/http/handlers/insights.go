package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/mapper"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
)

type InsightHandler struct {
	insightService ports.InsightService
}

func NewInsightHandler(insightService ports.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

func (h *InsightHandler) Analyze(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	insight, err := h.insightService.Analyze(c.Request.Context(), scope)
	if err != nil {
		if errors.Is(err, domain.ErrInsightDisabled) {
			c.JSON(
				http.StatusServiceUnavailable,
				apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgInsightUnavailable, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrMalformedInsight) {
			zap.L().Error("insight response malformed", zap.String("scope", string(scope)), zap.Error(err))
			c.JSON(
				http.StatusBadGateway,
				apierrors.CreateError(http.StatusBadGateway, apierrors.MsgInsightMalformed, lang),
			)
			return
		}

		zap.L().Error("failed to generate insight", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateError(http.StatusBadGateway, apierrors.MsgInsightUnavailable, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInsightResponse(insight))
}
