package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/mapper"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
)

type FocusHandler struct {
	focusService ports.FocusService
}

func NewFocusHandler(focusService ports.FocusService) *FocusHandler {
	return &FocusHandler{focusService: focusService}
}

func (h *FocusHandler) Start(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	var req dto.StartFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFocusPayload, lang),
		)
		return
	}

	mode := domain.FocusModeStudy
	if req.Mode != "" {
		mode = domain.FocusMode(req.Mode)
	}

	status, err := h.focusService.Start(c.Request.Context(), scope, mode, req.SubjectID, req.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTimerRunning) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgTimerConflict, lang),
			)
			return
		}

		zap.L().Error("failed to start focus timer", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInvalidFocusPayload, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToFocusStatusResponse(status))
}

func (h *FocusHandler) Pause(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	status, err := h.focusService.Pause(scope)
	if err != nil {
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgNoActiveTimer, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFocusStatusResponse(status))
}

func (h *FocusHandler) Resume(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	status, err := h.focusService.Resume(scope)
	if err != nil {
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgNoActiveTimer, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFocusStatusResponse(status))
}

func (h *FocusHandler) Reset(c *gin.Context) {
	scope := middleware.GetScope(c)
	c.JSON(http.StatusOK, mapper.ToFocusStatusResponse(h.focusService.Reset(scope)))
}

func (h *FocusHandler) Status(c *gin.Context) {
	scope := middleware.GetScope(c)
	c.JSON(http.StatusOK, mapper.ToFocusStatusResponse(h.focusService.Status(scope)))
}
