package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/dto"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/handlers"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/apierrors"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalServiceMock struct {
	mock.Mock
}

func (m *goalServiceMock) ListGoals(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	args := m.Called(ctx, scope)

	var goals []domain.Goal
	if value := args.Get(0); value != nil {
		goals = value.([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *goalServiceMock) CreateGoal(ctx context.Context, scope domain.Scope, input domain.CreateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, scope, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServiceMock) UpdateGoal(ctx context.Context, scope domain.Scope, id string, input domain.UpdateGoalInput) (domain.Goal, error) {
	args := m.Called(ctx, scope, id, input)
	return args.Get(0).(domain.Goal), args.Error(1)
}

func (m *goalServiceMock) DeleteGoal(ctx context.Context, scope domain.Scope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

func newGoalRouter(handler *handlers.GoalHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.ScopeMiddleware())
	group.GET("/goals", handler.ListGoals)
	group.POST("/goals", handler.CreateGoal)
	group.PATCH("/goals/:id", handler.UpdateGoal)
	group.DELETE("/goals/:id", handler.DeleteGoal)
	return router
}

func TestGoalHandler_ListGoals_ComputesProgress(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(goalServiceMock)
	serviceMock.On("ListGoals", mock.Anything, domain.ScopeLocal).Return(
		[]domain.Goal{
			{
				ID:             "goal-1",
				Title:          "Deep work",
				TargetMinutes:  240,
				CurrentMinutes: 210,
				Period:         domain.GoalPeriodDaily,
				CreatedAt:      createdAt,
				UpdatedAt:      createdAt,
			},
			{
				ID:             "goal-2",
				Title:          "Weekly review",
				TargetMinutes:  300,
				CurrentMinutes: 450,
				Period:         domain.GoalPeriodWeekly,
				CreatedAt:      createdAt,
				UpdatedAt:      createdAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.GoalItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, 88, got[0].ProgressPercent)
	// Overshooting the target stays clamped at 100.
	require.Equal(t, 100, got[1].ProgressPercent)
	serviceMock.AssertExpectations(t)
}

func TestGoalHandler_CreateGoal_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	serviceMock := new(goalServiceMock)
	serviceMock.On("CreateGoal", mock.Anything, domain.ScopeLocal, domain.CreateGoalInput{
		Title:         "Deep work",
		TargetMinutes: 240,
		Period:        domain.GoalPeriodDaily,
	}).Return(
		domain.Goal{
			ID:            "goal-1",
			Title:         "Deep work",
			TargetMinutes: 240,
			Period:        domain.GoalPeriodDaily,
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	body := `{"title": "Deep work", "target_minutes": 240, "period": "daily"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.GoalItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "goal-1", got.ID)
	require.Equal(t, 0, got.ProgressPercent)
	serviceMock.AssertExpectations(t)
}

func TestGoalHandler_CreateGoal_RejectsZeroTarget(t *testing.T) {
	serviceMock := new(goalServiceMock)
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	body := `{"title": "Deep work", "target_minutes": 0, "period": "daily"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid goal payload", got.ErrDetails.Message)
}

func TestGoalHandler_UpdateGoal_ResetsProgress(t *testing.T) {
	zero := 0
	serviceMock := new(goalServiceMock)
	serviceMock.On("UpdateGoal", mock.Anything, domain.ScopeLocal, "goal-1", domain.UpdateGoalInput{
		CurrentMinutes: &zero,
	}).Return(
		domain.Goal{ID: "goal-1", Title: "Deep work", TargetMinutes: 240, Period: domain.GoalPeriodDaily},
		nil,
	).Once()
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	body := `{"current_minutes": 0}`
	req := httptest.NewRequest(http.MethodPatch, "/api/goals/goal-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestGoalHandler_DeleteGoal_NotFound(t *testing.T) {
	serviceMock := new(goalServiceMock)
	serviceMock.On("DeleteGoal", mock.Anything, domain.ScopeLocal, "missing").Return(domain.ErrGoalNotFound).Once()
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/goals/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Goal not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestGoalHandler_ListGoals_Error(t *testing.T) {
	serviceMock := new(goalServiceMock)
	serviceMock.On("ListGoals", mock.Anything, domain.ScopeLocal).Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewGoalHandler(serviceMock)
	router := newGoalRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to list goals", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
