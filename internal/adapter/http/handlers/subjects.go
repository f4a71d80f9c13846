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

type SubjectHandler struct {
	subjectService ports.SubjectService
}

func NewSubjectHandler(subjectService ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	subjects, err := h.subjectService.ListSubjects(c.Request.Context(), scope)
	if err != nil {
		zap.L().Error("failed to list subjects", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSubjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubjectItems(subjects))
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload, lang),
		)
		return
	}

	subject, err := h.subjectService.CreateSubject(c.Request.Context(), scope, domain.CreateSubjectInput{
		Name:  name,
		Color: req.Color,
	})
	if err != nil {
		zap.L().Error("failed to create subject", zap.String("scope", string(scope)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateSubject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubjectItem(subject))
}

func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	lang := middleware.GetLang(c)
	scope := middleware.GetScope(c)

	subjectID := c.Param("id")
	if subjectID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload, lang),
		)
		return
	}

	if err := h.subjectService.DeleteSubject(c.Request.Context(), scope, subjectID); err != nil {
		if errors.Is(err, domain.ErrSubjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete subject",
			zap.String("scope", string(scope)), zap.String("subject_id", subjectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteSubject, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
