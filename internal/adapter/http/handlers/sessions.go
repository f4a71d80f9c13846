package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/mapper"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/validation"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
)

type SessionHandler struct {
	sessionService ports.SessionService
}

func NewSessionHandler(sessionService ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), scope)
	if err != nil {
		zap.L().Error("failed to list sessions", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSessions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionItems(sessions))
}

func (h *SessionHandler) LogSession(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSessionPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateSessionInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSessionPayload, lang),
		)
		return
	}

	session, err := h.sessionService.LogSession(c.Request.Context(), scope, input)
	if err != nil {
		if errors.Is(err, domain.ErrSubjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to log session", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogSession, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSessionItem(session))
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSessionPayload, lang),
		)
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), scope, sessionID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSessionNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete session",
			zap.String("scope", string(scope)), zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteSession, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
