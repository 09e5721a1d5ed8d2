package leave

type LeaveType struct {
	ID              string  `json:"id" validate:"required"`
	NameEn          string  `json:"name_en" validate:"required"`
	NameAr          *string `json:"name_ar,omitempty"`
	AnnualDays      float64 `json:"annual_days" validate:"gte=0"`
	CarryForward    bool    `json:"carry_forward"`
	MaxCarryForward *float64 `json:"max_carry_forward,omitempty"`
	GenderSpecific  *string `json:"gender_specific,omitempty" validate:"omitempty,oneof=All Male Female"`
	RequiresApproval bool   `json:"requires_approval"`
	IsPaid          bool    `json:"is_paid"`
	CreatedAt       *string `json:"created_at,omitempty"`
}

// Request is a leave request. total_days is derived server-side from the
// date range; status transitions only through approve/reject/cancel calls.
type Request struct {
	ID              string  `json:"id" validate:"required"`
	EmployeeID      string  `json:"employee_id" validate:"required"`
	LeaveTypeID     string  `json:"leave_type_id" validate:"required"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalDays       float64 `json:"total_days" validate:"gte=0"`
	Reason          string  `json:"reason" validate:"required"`
	Status          string  `json:"status" validate:"required,oneof=Pending Approved Rejected Cancelled"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       *string `json:"created_at,omitempty"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

// CreateRequest omits the server-assigned id, derived day count, status and
// approval metadata.
type CreateRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

// UpdateRequest edits a pending request; nil fields are untouched.
type UpdateRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// Balance is the per-employee per-type per-year remaining-day counter,
// recomputed server-side whenever a request is approved.
type Balance struct {
	ID               string   `json:"id" validate:"required"`
	EmployeeID       string   `json:"employee_id" validate:"required"`
	LeaveTypeID      string   `json:"leave_type_id" validate:"required"`
	Year             int      `json:"year" validate:"required"`
	AllocatedDays    float64  `json:"allocated_days" validate:"gte=0"`
	UsedDays         float64  `json:"used_days" validate:"gte=0"`
	RemainingBalance float64  `json:"remaining_balance"`
	CarriedForward   *float64 `json:"carried_forward,omitempty"`
}
