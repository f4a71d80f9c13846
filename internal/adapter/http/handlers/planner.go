package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/mapper"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
)

type PlannerHandler struct {
	plannerService ports.PlannerService
}

func NewPlannerHandler(plannerService ports.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// WeekView renders the Sunday-aligned week containing the optional
// ?date=YYYY-MM-DD parameter, defaulting to today.
func (h *PlannerHandler) WeekView(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	ref := time.Now()
	if rawDate := c.Query("date"); rawDate != "" {
		parsed, err := time.Parse(time.DateOnly, rawDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDate, lang),
			)
			return
		}
		ref = parsed
	}

	view, err := h.plannerService.WeekView(c.Request.Context(), scope, ref)
	if err != nil {
		zap.L().Error("failed to build week view", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBuildPlanner, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWeekViewResponse(view))
}

func (h *PlannerHandler) ExportICS(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	payload, err := h.plannerService.ExportICS(c.Request.Context(), scope)
	if err != nil {
		zap.L().Error("failed to export calendar", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportPlanner, lang),
		)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="planner.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}
