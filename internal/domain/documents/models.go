package documents

type Document struct {
	ID             string   `json:"id" validate:"required"`
	EmployeeID     string   `json:"employee_id" validate:"required"`
	DocumentType   string   `json:"document_type" validate:"required"`
	DocumentName   string   `json:"document_name" validate:"required"`
	FilePath       string   `json:"file_path" validate:"required"`
	FileSize       int64    `json:"file_size" validate:"gte=0"`
	MimeType       string   `json:"mime_type" validate:"required"`
	UploadedBy     string   `json:"uploaded_by" validate:"required"`
	UploadDate     string   `json:"upload_date" validate:"required"`
	ExpiryDate     *string  `json:"expiry_date,omitempty"`
	Status         string   `json:"status" validate:"required,oneof=active expired archived"`
	IsConfidential bool     `json:"is_confidential"`
	AccessLevel    string   `json:"access_level" validate:"required,oneof=public internal confidential restricted"`
	Version        int      `json:"version" validate:"gte=1"`
	Tags           []string `json:"tags,omitempty"`
	CreatedAt      *string  `json:"created_at,omitempty"`
}

// Request is an employee's ask for an HR-issued document (salary
// certificate and the like); processing fields are server-assigned.
type Request struct {
	ID              string  `json:"id" validate:"required"`
	EmployeeID      string  `json:"employee_id" validate:"required"`
	DocumentType    string  `json:"document_type" validate:"required,oneof=salary_certificate employment_letter experience_certificate no_objection_certificate other"`
	Purpose         string  `json:"purpose" validate:"required"`
	Urgency         string  `json:"urgency" validate:"required,oneof=low medium high"`
	Status          string  `json:"status" validate:"required,oneof=pending in_progress completed rejected"`
	RequestedAt     string  `json:"requested_at" validate:"required"`
	CompletedAt     *string `json:"completed_at,omitempty"`
	ProcessedBy     *string `json:"processed_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	DocumentID      *string `json:"document_id,omitempty"`
}

type CreateRequest struct {
	EmployeeID   string `json:"employee_id"`
	DocumentType string `json:"document_type"`
	Purpose      string `json:"purpose"`
	Urgency      string `json:"urgency,omitempty"`
}

// ApplyDefaults fills declared create-contract defaults. Urgency defaults
// to medium; no other field has a default.
func (c *CreateRequest) ApplyDefaults() {
	if c.Urgency == "" {
		c.Urgency = UrgencyMedium
	}
}
