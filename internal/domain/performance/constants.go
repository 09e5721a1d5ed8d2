package performance

const (
	GoalStatusDraft     = "draft"
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusCancelled = "cancelled"

	AppraisalStatusNotStarted = "not_started"
	AppraisalStatusInProgress = "in_progress"
	AppraisalStatusCompleted  = "completed"
	AppraisalStatusApproved   = "approved"
)
