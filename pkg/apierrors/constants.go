package apierrors

const (
	MsgFailListTasks      = "failListTasks"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgFailListSubjects      = "failListSubjects"
	MsgInvalidSubjectPayload = "invalidSubjectPayload"
	MsgSubjectNotFound       = "subjectNotFound"
	MsgFailCreateSubject     = "failCreateSubject"
	MsgFailDeleteSubject     = "failDeleteSubject"

	MsgFailListGoals      = "failListGoals"
	MsgInvalidGoalPayload = "invalidGoalPayload"
	MsgGoalNotFound       = "goalNotFound"
	MsgFailCreateGoal     = "failCreateGoal"
	MsgFailUpdateGoal     = "failUpdateGoal"
	MsgFailDeleteGoal     = "failDeleteGoal"

	MsgFailListSessions      = "failListSessions"
	MsgInvalidSessionPayload = "invalidSessionPayload"
	MsgSessionNotFound       = "sessionNotFound"
	MsgFailLogSession        = "failLogSession"
	MsgFailDeleteSession     = "failDeleteSession"

	MsgInvalidDate       = "invalidDate"
	MsgFailBuildPlanner  = "failBuildPlanner"
	MsgFailExportPlanner = "failExportPlanner"

	MsgInsightUnavailable = "insightUnavailable"
	MsgInsightMalformed   = "insightMalformed"

	MsgInvalidFocusPayload = "invalidFocusPayload"
	MsgNoActiveTimer       = "noActiveTimer"
	MsgTimerConflict       = "timerConflict"
)
