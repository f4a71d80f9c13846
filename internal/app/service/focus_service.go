package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

const (
	studyDuration = 25 * time.Minute
	breakDuration = 5 * time.Minute

	// FixedSessionMinutes is logged for every finished study countdown,
	// regardless of pauses along the way.
	FixedSessionMinutes = 25

	finalizeTimeout = 10 * time.Second
)

// FocusEngine runs one countdown timer per scope. A study countdown
// that reaches zero auto-finalizes into a logged StudySession; pausing,
// resuming, and resetting have no side effects.
type FocusEngine struct {
	mu       sync.Mutex
	timers   map[domain.Scope]*focusTimer
	sessions ports.SessionService
	now      func() time.Time
}

type focusTimer struct {
	mode      domain.FocusMode
	subjectID string
	taskID    *string
	running   bool
	remaining time.Duration // meaningful while paused
	deadline  time.Time     // meaningful while running
	startedAt time.Time
	seq       int // invalidates stale auto-finalize callbacks
	finalize  *time.Timer
}

var _ ports.FocusService = (*FocusEngine)(nil)

func NewFocusEngine(sessions ports.SessionService) *FocusEngine {
	return &FocusEngine{
		timers:   make(map[domain.Scope]*focusTimer),
		sessions: sessions,
		now:      time.Now,
	}
}

func modeDuration(mode domain.FocusMode) time.Duration {
	if mode == domain.FocusModeBreak {
		return breakDuration
	}
	return studyDuration
}

func (e *FocusEngine) Start(ctx context.Context, scope domain.Scope, mode domain.FocusMode, subjectID string, taskID *string) (domain.FocusStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.timers[scope]; ok && existing.running {
		return e.statusLocked(scope), domain.ErrTimerRunning
	}

	if mode != domain.FocusModeBreak {
		mode = domain.FocusModeStudy
	}

	duration := modeDuration(mode)
	timer := &focusTimer{
		mode:      mode,
		subjectID: subjectID,
		taskID:    taskID,
		running:   true,
		deadline:  e.now().Add(duration),
		startedAt: e.now(),
	}
	e.timers[scope] = timer
	e.armFinalizeLocked(scope, timer, duration)

	return e.statusLocked(scope), nil
}

func (e *FocusEngine) Pause(scope domain.Scope) (domain.FocusStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	timer, ok := e.timers[scope]
	if !ok {
		return e.statusLocked(scope), domain.ErrNoActiveTimer
	}
	if !timer.running {
		return e.statusLocked(scope), domain.ErrTimerNotRunning
	}

	timer.remaining = timer.deadline.Sub(e.now())
	if timer.remaining < 0 {
		timer.remaining = 0
	}
	timer.running = false
	timer.seq++
	if timer.finalize != nil {
		timer.finalize.Stop()
	}

	return e.statusLocked(scope), nil
}

func (e *FocusEngine) Resume(scope domain.Scope) (domain.FocusStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	timer, ok := e.timers[scope]
	if !ok {
		return e.statusLocked(scope), domain.ErrNoActiveTimer
	}
	if timer.running {
		return e.statusLocked(scope), domain.ErrTimerRunning
	}

	timer.running = true
	timer.deadline = e.now().Add(timer.remaining)
	e.armFinalizeLocked(scope, timer, timer.remaining)

	return e.statusLocked(scope), nil
}

// Reset stops and discards the countdown without logging anything.
func (e *FocusEngine) Reset(scope domain.Scope) domain.FocusStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	if timer, ok := e.timers[scope]; ok {
		timer.seq++
		if timer.finalize != nil {
			timer.finalize.Stop()
		}
		delete(e.timers, scope)
	}

	return e.statusLocked(scope)
}

func (e *FocusEngine) Status(scope domain.Scope) domain.FocusStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked(scope)
}

func (e *FocusEngine) statusLocked(scope domain.Scope) domain.FocusStatus {
	timer, ok := e.timers[scope]
	if !ok {
		return domain.FocusStatus{
			State:            domain.FocusStateIdle,
			Mode:             domain.FocusModeStudy,
			RemainingSeconds: int(studyDuration.Seconds()),
		}
	}

	remaining := timer.remaining
	state := domain.FocusStatePaused
	if timer.running {
		remaining = timer.deadline.Sub(e.now())
		state = domain.FocusStateRunning
	}
	if remaining < 0 {
		remaining = 0
	}

	startedAt := timer.startedAt
	return domain.FocusStatus{
		State:            state,
		Mode:             timer.mode,
		SubjectID:        timer.subjectID,
		TaskID:           timer.taskID,
		RemainingSeconds: int(remaining.Round(time.Second).Seconds()),
		StartedAt:        &startedAt,
	}
}

func (e *FocusEngine) armFinalizeLocked(scope domain.Scope, timer *focusTimer, in time.Duration) {
	timer.seq++
	seq := timer.seq
	timer.finalize = time.AfterFunc(in, func() {
		e.autoFinalize(scope, seq)
	})
}

// autoFinalize fires when a running countdown hits zero. A stale seq
// means the timer was paused or reset after the callback was armed.
func (e *FocusEngine) autoFinalize(scope domain.Scope, seq int) {
	e.mu.Lock()

	timer, ok := e.timers[scope]
	if !ok || !timer.running || timer.seq != seq {
		e.mu.Unlock()
		return
	}
	delete(e.timers, scope)

	mode := timer.mode
	subjectID := timer.subjectID
	taskID := timer.taskID
	startedAt := timer.startedAt
	e.mu.Unlock()

	if mode != domain.FocusModeStudy {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()

	_, err := e.sessions.LogSession(ctx, scope, domain.CreateSessionInput{
		SubjectID:       subjectID,
		TaskID:          taskID,
		StartAt:         startedAt,
		EndAt:           e.now(),
		DurationMinutes: FixedSessionMinutes,
	})
	if err != nil {
		zap.L().Error("failed to log auto-finalized focus session",
			zap.String("scope", string(scope)), zap.Error(err))
		return
	}

	zap.L().Info("focus session auto-finalized",
		zap.String("scope", string(scope)),
		zap.String("subject_id", subjectID),
		zap.Int("minutes", FixedSessionMinutes))
}
