package recruitment

const (
	RequisitionStatusDraft    = "draft"
	RequisitionStatusPending  = "pending"
	RequisitionStatusApproved = "approved"
	RequisitionStatusRejected = "rejected"
	RequisitionStatusClosed   = "closed"

	ApplicationStatusApplied    = "applied"
	ApplicationStatusScreening  = "screening"
	ApplicationStatusInterview  = "interview"
	ApplicationStatusAssessment = "assessment"
	ApplicationStatusOffer      = "offer"
	ApplicationStatusHired      = "hired"
	ApplicationStatusRejected   = "rejected"

	InterviewStatusScheduled   = "scheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
	InterviewStatusRescheduled = "rescheduled"
)
