package training

type Program struct {
	ID                   string   `json:"id" validate:"required"`
	TitleEn              string   `json:"title_en" validate:"required"`
	TitleAr              *string  `json:"title_ar,omitempty"`
	DescriptionEn        string   `json:"description_en" validate:"required"`
	DescriptionAr        *string  `json:"description_ar,omitempty"`
	Type                 string   `json:"type" validate:"required,oneof=Internal External Online Workshop Seminar"`
	Category             string   `json:"category" validate:"required"`
	DurationHours        float64  `json:"duration_hours" validate:"gt=0"`
	MaxParticipants      *int     `json:"max_participants,omitempty"`
	Location             *string  `json:"location,omitempty"`
	Instructor           *string  `json:"instructor,omitempty"`
	StartDate            string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	RegistrationDeadline *string  `json:"registration_deadline,omitempty"`
	Cost                 *float64 `json:"cost,omitempty"`
	Status               string   `json:"status" validate:"required,oneof=Active Inactive Completed Cancelled"`
	CreatedBy            string   `json:"created_by" validate:"required"`
	CreatedAt            *string  `json:"created_at,omitempty"`
}

// Request is a per-employee enrollment in a program. Approval and
// completion fields are server-assigned.
type Request struct {
	ID                string  `json:"id" validate:"required"`
	EmployeeID        string  `json:"employee_id" validate:"required"`
	ProgramID         string  `json:"program_id" validate:"required"`
	RequestType       string  `json:"request_type" validate:"required,oneof=enrollment nomination self_request"`
	Justification     *string `json:"justification,omitempty"`
	ExpectedOutcome   *string `json:"expected_outcome,omitempty"`
	Status            string  `json:"status" validate:"required,oneof=pending approved rejected completed"`
	ApprovedBy        *string `json:"approved_by,omitempty"`
	ApprovedAt        *string `json:"approved_at,omitempty"`
	CompletionDate    *string `json:"completion_date,omitempty"`
	CompletionStatus  *string `json:"completion_status,omitempty" validate:"omitempty,oneof=passed failed incomplete"`
	CertificateIssued *bool   `json:"certificate_issued,omitempty"`
	FeedbackRating    *int    `json:"feedback_rating,omitempty" validate:"omitempty,min=1,max=5"`
	FeedbackComments  *string `json:"feedback_comments,omitempty"`
	CreatedAt         *string `json:"created_at,omitempty"`
}

type CreateRequest struct {
	EmployeeID      string  `json:"employee_id"`
	ProgramID       string  `json:"program_id"`
	RequestType     string  `json:"request_type"`
	Justification   *string `json:"justification,omitempty"`
	ExpectedOutcome *string `json:"expected_outcome,omitempty"`
}

type Skill struct {
	ID               string  `json:"id" validate:"required"`
	EmployeeID       string  `json:"employee_id" validate:"required"`
	SkillName        string  `json:"skill_name" validate:"required"`
	SkillCategory    string  `json:"skill_category" validate:"required"`
	SkillLevel       string  `json:"skill_level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	AcquiredDate     *string `json:"acquired_date,omitempty"`
	VerifiedBy       *string `json:"verified_by,omitempty"`
	VerificationDate *string `json:"verification_date,omitempty"`
	ExpiryDate       *string `json:"expiry_date,omitempty"`
	CreatedAt        *string `json:"created_at,omitempty"`
}

type CreateSkill struct {
	EmployeeID    string  `json:"employee_id"`
	SkillName     string  `json:"skill_name"`
	SkillCategory string  `json:"skill_category"`
	SkillLevel    string  `json:"skill_level"`
	AcquiredDate  *string `json:"acquired_date,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
}

type Certification struct {
	ID                string  `json:"id" validate:"required"`
	EmployeeID        string  `json:"employee_id" validate:"required"`
	CertificateName   string  `json:"certificate_name" validate:"required"`
	Issuer            string  `json:"issuer" validate:"required"`
	IssueDate         string  `json:"issue_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate        *string `json:"expiry_date,omitempty"`
	CertificateNumber *string `json:"certificate_number,omitempty"`
	VerificationURL   *string `json:"verification_url,omitempty"`
	Verified          bool    `json:"verified"`
	FilePath          *string `json:"file_path,omitempty"`
	CreatedAt         *string `json:"created_at,omitempty"`
}
