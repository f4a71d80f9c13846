package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/mapper"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
)

type GoalHandler struct {
	goalService ports.GoalService
}

func NewGoalHandler(goalService ports.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	goals, err := h.goalService.ListGoals(c.Request.Context(), scope)
	if err != nil {
		zap.L().Error("failed to list goals", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListGoals, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalItems(goals))
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), scope, domain.CreateGoalInput{
		Title:         title,
		TargetMinutes: req.TargetMinutes,
		Period:        domain.GoalPeriod(req.Period),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTarget) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create goal", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateGoal, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToGoalItem(goal))
}

func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	goalID := c.Param("id")
	if goalID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	if req.Title == nil && req.TargetMinutes == nil && req.CurrentMinutes == nil && req.Period == nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	input := domain.UpdateGoalInput{
		TargetMinutes:  req.TargetMinutes,
		CurrentMinutes: req.CurrentMinutes,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
			)
			return
		}
		input.Title = &title
	}
	if req.Period != nil {
		period := domain.GoalPeriod(*req.Period)
		input.Period = &period
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), scope, goalID, input)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrInvalidTarget) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
			)
			return
		}

		zap.L().Error("failed to update goal",
			zap.String("scope", string(scope)), zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateGoal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToGoalItem(goal))
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	goalID := c.Param("id")
	if goalID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGoalPayload, lang),
		)
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), scope, goalID); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgGoalNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete goal",
			zap.String("scope", string(scope)), zap.String("goal_id", goalID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteGoal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
