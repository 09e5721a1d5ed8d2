package payroll

const (
	PayslipStatusDraft     = "Draft"
	PayslipStatusProcessed = "Processed"
	PayslipStatusPaid      = "Paid"

	LoanStatusActive    = "Active"
	LoanStatusCompleted = "Completed"
	LoanStatusCancelled = "Cancelled"
)
