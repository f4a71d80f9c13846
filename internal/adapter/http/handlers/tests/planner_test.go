package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/handlers"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/schedule"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerServiceMock struct {
	mock.Mock
}

func (m *plannerServiceMock) WeekView(ctx context.Context, scope domain.Scope, ref time.Time) (schedule.WeekView, error) {
	args := m.Called(ctx, scope, ref)
	return args.Get(0).(schedule.WeekView), args.Error(1)
}

func (m *plannerServiceMock) ExportICS(ctx context.Context, scope domain.Scope) (string, error) {
	args := m.Called(ctx, scope)
	return args.String(0), args.Error(1)
}

func newPlannerRouter(handler *handlers.PlannerHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.ScopeMiddleware())
	group.GET("/planner/week", handler.WeekView)
	group.GET("/planner/export.ics", handler.ExportICS)
	return router
}

func TestPlannerHandler_WeekView_Success(t *testing.T) {
	weekStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	occStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	occEnd := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	view := schedule.WeekView{
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		VisibleStartHour: 7,
		VisibleEndHour:   22,
		Occurrences: []schedule.PositionedOccurrence{
			{
				Occurrence: schedule.Occurrence{
					Task: domain.Task{
						ID:         "task-1",
						SubjectID:  "subj-math",
						Title:      "Calculus review",
						Priority:   domain.PriorityHigh,
						Recurrence: &domain.RecurrenceRule{Type: domain.RecurrenceDaily},
					},
					StartAt: occStart,
					EndAt:   occEnd,
				},
				Block: schedule.Block{
					TopOffsetMinutes: 120,
					HeightMinutes:    90,
					Color:            "#3b82f6",
				},
			},
		},
	}

	serviceMock := new(plannerServiceMock)
	serviceMock.On("WeekView", mock.Anything, domain.ScopeLocal, mock.MatchedBy(func(ref time.Time) bool {
		return ref.Equal(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	})).Return(view, nil).Once()
	handler := handlers.NewPlannerHandler(serviceMock)
	router := newPlannerRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/planner/week?date=2026-03-04", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.WeekViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2026-03-01T00:00:00Z", got.WeekStart)
	require.Equal(t, 7, got.VisibleStartHour)
	require.Equal(t, 22, got.VisibleEndHour)
	require.Len(t, got.Occurrences, 1)
	require.Equal(t, "task-1", got.Occurrences[0].TaskID)
	require.Equal(t, "2026-03-02T09:00:00Z", got.Occurrences[0].Start)
	require.True(t, got.Occurrences[0].Recurring)
	require.InDelta(t, 120, got.Occurrences[0].TopOffsetMinutes, 0.001)
	require.InDelta(t, 90, got.Occurrences[0].HeightMinutes, 0.001)
	require.Equal(t, "#3b82f6", got.Occurrences[0].Color)
	serviceMock.AssertExpectations(t)
}

func TestPlannerHandler_WeekView_InvalidDate(t *testing.T) {
	serviceMock := new(plannerServiceMock)
	handler := handlers.NewPlannerHandler(serviceMock)
	router := newPlannerRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/planner/week?date=03-2026-04", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid date", got.ErrDetails.Message)
}

func TestPlannerHandler_WeekView_Error(t *testing.T) {
	serviceMock := new(plannerServiceMock)
	serviceMock.On("WeekView", mock.Anything, domain.ScopeLocal, mock.Anything).
		Return(schedule.WeekView{}, errors.New("db is down")).Once()
	handler := handlers.NewPlannerHandler(serviceMock)
	router := newPlannerRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/planner/week", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to build the week view", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestPlannerHandler_ExportICS_Success(t *testing.T) {
	payload := "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"

	serviceMock := new(plannerServiceMock)
	serviceMock.On("ExportICS", mock.Anything, domain.ScopeLocal).Return(payload, nil).Once()
	handler := handlers.NewPlannerHandler(serviceMock)
	router := newPlannerRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/planner/export.ics", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "planner.ics")
	require.Equal(t, payload, rec.Body.String())
	serviceMock.AssertExpectations(t)
}
