package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

// recentSessionCount bounds how much session history goes into the
// prompt.
const recentSessionCount = 5

type InsightService struct {
	client            ports.InsightClient
	taskRepository    ports.TaskRepository
	goalRepository    ports.GoalRepository
	sessionRepository ports.SessionRepository
}

var _ ports.InsightService = (*InsightService)(nil)

func NewInsightService(client ports.InsightClient, taskRepository ports.TaskRepository, goalRepository ports.GoalRepository, sessionRepository ports.SessionRepository) *InsightService {
	return &InsightService{
		client:            client,
		taskRepository:    taskRepository,
		goalRepository:    goalRepository,
		sessionRepository: sessionRepository,
	}
}

type promptTask struct {
	Title     string `json:"title"`
	Start     string `json:"start"`
	Completed bool   `json:"completed"`
}

type promptGoal struct {
	Title          string `json:"title"`
	TargetMinutes  int    `json:"targetMinutes"`
	CurrentMinutes int    `json:"currentMinutes"`
	Period         string `json:"period"`
}

type promptSession struct {
	SubjectID       string `json:"subjectId"`
	Start           string `json:"start"`
	DurationMinutes int    `json:"durationMinutes"`
}

type insightPayload struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
	Quote       string   `json:"quote"`
}

// Analyze serializes the scope's snapshot into the coaching prompt and
// decodes the model's JSON reply. A reply that does not match the
// expected shape degrades to ErrMalformedInsight; nothing here can
// crash the caller's view.
func (s *InsightService) Analyze(ctx context.Context, scope domain.Scope) (domain.Insight, error) {
	if s.client == nil {
		return domain.Insight{}, domain.ErrInsightDisabled
	}

	tasks, err := s.taskRepository.ListTasks(ctx, scope)
	if err != nil {
		return domain.Insight{}, err
	}
	goals, err := s.goalRepository.ListGoals(ctx, scope)
	if err != nil {
		return domain.Insight{}, err
	}
	sessions, err := s.sessionRepository.ListSessions(ctx, scope)
	if err != nil {
		return domain.Insight{}, err
	}

	prompt, err := buildPrompt(tasks, goals, sessions)
	if err != nil {
		return domain.Insight{}, err
	}

	raw, err := s.client.GenerateInsight(ctx, prompt)
	if err != nil {
		return domain.Insight{}, err
	}

	var payload insightPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		zap.L().Warn("insight response is not valid JSON", zap.Error(err))
		return domain.Insight{}, domain.ErrMalformedInsight
	}
	if payload.Analysis == "" && len(payload.Suggestions) == 0 && payload.Quote == "" {
		return domain.Insight{}, domain.ErrMalformedInsight
	}

	return domain.Insight{
		Analysis:    payload.Analysis,
		Suggestions: payload.Suggestions,
		Quote:       payload.Quote,
	}, nil
}

func buildPrompt(tasks []domain.Task, goals []domain.Goal, sessions []domain.StudySession) (string, error) {
	promptTasks := make([]promptTask, 0, len(tasks))
	for _, task := range tasks {
		promptTasks = append(promptTasks, promptTask{
			Title:     task.Title,
			Start:     task.StartAt.Format("2006-01-02T15:04:05Z07:00"),
			Completed: task.Completed,
		})
	}

	promptGoals := make([]promptGoal, 0, len(goals))
	for _, goal := range goals {
		promptGoals = append(promptGoals, promptGoal{
			Title:          goal.Title,
			TargetMinutes:  goal.TargetMinutes,
			CurrentMinutes: goal.CurrentMinutes,
			Period:         string(goal.Period),
		})
	}

	if len(sessions) > recentSessionCount {
		sessions = sessions[len(sessions)-recentSessionCount:]
	}
	promptSessions := make([]promptSession, 0, len(sessions))
	for _, session := range sessions {
		promptSessions = append(promptSessions, promptSession{
			SubjectID:       session.SubjectID,
			Start:           session.StartAt.Format("2006-01-02T15:04:05Z07:00"),
			DurationMinutes: session.DurationMinutes,
		})
	}

	tasksJSON, err := json.Marshal(promptTasks)
	if err != nil {
		return "", err
	}
	goalsJSON, err := json.Marshal(promptGoals)
	if err != nil {
		return "", err
	}
	sessionsJSON, err := json.Marshal(promptSessions)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Act as a strict but encouraging academic study coach.

Here is the student's current data:
Tasks: %s
Goals: %s
Recent Sessions: %s

Please provide a concise analysis in JSON format with the following keys:
- "analysis": A short paragraph analyzing productivity.
- "suggestions": An array of 3 specific, actionable bullet points to improve the schedule or habits.
- "quote": A short motivational quote suitable for a student.

Do not use markdown code blocks. Just return the raw JSON string.`,
		tasksJSON, goalsJSON, sessionsJSON), nil
}
