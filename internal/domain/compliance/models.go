package compliance

import "encoding/json"

type Check struct {
	ID                string   `json:"id" validate:"required"`
	EmployeeID        string   `json:"employee_id" validate:"required"`
	CheckType         string   `json:"check_type" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	DueDate           string   `json:"due_date" validate:"required,datetime=2006-01-02"`
	CompletedDate     *string  `json:"completed_date,omitempty"`
	Status            string   `json:"status" validate:"required,oneof=pending completed overdue not_applicable"`
	ComplianceOfficer *string  `json:"compliance_officer,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	DocumentsRequired []string `json:"documents_required,omitempty"`
	CreatedAt         *string  `json:"created_at,omitempty"`
}

type CreateCheck struct {
	EmployeeID        string   `json:"employee_id"`
	CheckType         string   `json:"check_type"`
	Description       string   `json:"description"`
	DueDate           string   `json:"due_date"`
	ComplianceOfficer *string  `json:"compliance_officer,omitempty"`
	DocumentsRequired []string `json:"documents_required,omitempty"`
}

type UpdateCheck struct {
	Status        *string `json:"status,omitempty"`
	CompletedDate *string `json:"completed_date,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AuditLog rows are append-only; the client only ever reads them.
type AuditLog struct {
	ID           string          `json:"id" validate:"required"`
	UserID       string          `json:"user_id" validate:"required"`
	Action       string          `json:"action" validate:"required"`
	ResourceType string          `json:"resource_type" validate:"required"`
	ResourceID   string          `json:"resource_id" validate:"required"`
	OldValues    json.RawMessage `json:"old_values,omitempty"`
	NewValues    json.RawMessage `json:"new_values,omitempty"`
	IPAddress    *string         `json:"ip_address,omitempty"`
	UserAgent    *string         `json:"user_agent,omitempty"`
	Timestamp    string          `json:"timestamp" validate:"required"`
}

type Report struct {
	ID          string `json:"id" validate:"required"`
	ReportType  string `json:"report_type" validate:"required"`
	GeneratedBy string `json:"generated_by" validate:"required"`
	GeneratedAt string `json:"generated_at" validate:"required"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
	FilePath    string `json:"file_path" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=generating completed failed"`
}

type GenerateReport struct {
	ReportType  string `json:"report_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}
