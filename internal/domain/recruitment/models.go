package recruitment

// JobRequisition opens the pipeline; a Vacancy is posted from an approved
// requisition, Applications reference a Vacancy, Interviews an Application.
type JobRequisition struct {
	ID                      string   `json:"id" validate:"required"`
	JobTitle                string   `json:"job_title" validate:"required"`
	DepartmentID            string   `json:"department_id" validate:"required"`
	ReportingManager        string   `json:"reporting_manager" validate:"required"`
	EmploymentType          string   `json:"employment_type" validate:"required,oneof=Full-time Part-time Contract Intern"`
	NumberOfVacancies       int      `json:"number_of_vacancies" validate:"gt=0"`
	JobDescription          string   `json:"job_description" validate:"required"`
	RequiredQualifications  string   `json:"required_qualifications" validate:"required"`
	PreferredQualifications *string  `json:"preferred_qualifications,omitempty"`
	ExperienceRequired      string   `json:"experience_required" validate:"required"`
	SalaryRangeMin          *float64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax          *float64 `json:"salary_range_max,omitempty"`
	Location                string   `json:"location" validate:"required"`
	Urgency                 string   `json:"urgency" validate:"required,oneof=Low Medium High"`
	RequestedBy             string   `json:"requested_by" validate:"required"`
	ApprovedBy              *string  `json:"approved_by,omitempty"`
	Status                  string   `json:"status" validate:"required,oneof=draft pending approved rejected closed"`
	CreatedAt               *string  `json:"created_at,omitempty"`
}

type CreateRequisition struct {
	JobTitle                string   `json:"job_title"`
	DepartmentID            string   `json:"department_id"`
	ReportingManager        string   `json:"reporting_manager"`
	EmploymentType          string   `json:"employment_type"`
	NumberOfVacancies       int      `json:"number_of_vacancies"`
	JobDescription          string   `json:"job_description"`
	RequiredQualifications  string   `json:"required_qualifications"`
	PreferredQualifications *string  `json:"preferred_qualifications,omitempty"`
	ExperienceRequired      string   `json:"experience_required"`
	SalaryRangeMin          *float64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax          *float64 `json:"salary_range_max,omitempty"`
	Location                string   `json:"location"`
	Urgency                 string   `json:"urgency"`
	RequestedBy             string   `json:"requested_by"`
}

type UpdateRequisition struct {
	JobTitle          *string  `json:"job_title,omitempty"`
	NumberOfVacancies *int     `json:"number_of_vacancies,omitempty"`
	JobDescription    *string  `json:"job_description,omitempty"`
	SalaryRangeMin    *float64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax    *float64 `json:"salary_range_max,omitempty"`
	Location          *string  `json:"location,omitempty"`
	Urgency           *string  `json:"urgency,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

type Vacancy struct {
	ID                string  `json:"id" validate:"required"`
	RequisitionID     string  `json:"requisition_id" validate:"required"`
	JobTitle          string  `json:"job_title" validate:"required"`
	Department        string  `json:"department" validate:"required"`
	Location          string  `json:"location" validate:"required"`
	EmploymentType    string  `json:"employment_type" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	Requirements      string  `json:"requirements" validate:"required"`
	PostedDate        string  `json:"posted_date" validate:"required,datetime=2006-01-02"`
	ClosingDate       string  `json:"closing_date" validate:"required,datetime=2006-01-02"`
	Status            string  `json:"status" validate:"required,oneof=active closed on_hold"`
	ApplicationsCount *int    `json:"applications_count,omitempty"`
}

type CreateVacancy struct {
	RequisitionID  string `json:"requisition_id"`
	JobTitle       string `json:"job_title"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	PostedDate     string `json:"posted_date"`
	ClosingDate    string `json:"closing_date"`
}

type Application struct {
	ID              string   `json:"id" validate:"required"`
	VacancyID       string   `json:"vacancy_id" validate:"required"`
	FullName        string   `json:"full_name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Nationality     string   `json:"nationality" validate:"required"`
	ExperienceYears float64  `json:"experience_years" validate:"gte=0"`
	CurrentSalary   *float64 `json:"current_salary,omitempty"`
	ExpectedSalary  *float64 `json:"expected_salary,omitempty"`
	NoticePeriod    *string  `json:"notice_period,omitempty"`
	ResumePath      string   `json:"resume_path" validate:"required"`
	CoverLetter     *string  `json:"cover_letter,omitempty"`
	Status          string   `json:"status" validate:"required,oneof=applied screening interview assessment offer hired rejected"`
	Source          string   `json:"source" validate:"required,oneof=website referral linkedin job_board other"`
	CreatedAt       *string  `json:"created_at,omitempty"`
}

type Interview struct {
	ID              string   `json:"id" validate:"required"`
	ApplicationID   string   `json:"application_id" validate:"required"`
	InterviewType   string   `json:"interview_type" validate:"required,oneof=phone video in_person technical panel"`
	ScheduledDate   string   `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime   string   `json:"scheduled_time" validate:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"gt=0"`
	InterviewerIDs  []string `json:"interviewer_ids" validate:"required,min=1"`
	Location        *string  `json:"location,omitempty"`
	MeetingLink     *string  `json:"meeting_link,omitempty"`
	Status          string   `json:"status" validate:"required,oneof=scheduled completed cancelled rescheduled"`
	Feedback        *string  `json:"feedback,omitempty"`
	Rating          *int     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Recommendation  *string  `json:"recommendation,omitempty" validate:"omitempty,oneof=hire reject maybe"`
	CreatedAt       *string  `json:"created_at,omitempty"`
}

type ScheduleInterview struct {
	ApplicationID   string   `json:"application_id"`
	InterviewType   string   `json:"interview_type"`
	ScheduledDate   string   `json:"scheduled_date"`
	ScheduledTime   string   `json:"scheduled_time"`
	DurationMinutes int      `json:"duration_minutes"`
	InterviewerIDs  []string `json:"interviewer_ids"`
	Location        *string  `json:"location,omitempty"`
	MeetingLink     *string  `json:"meeting_link,omitempty"`
}

type InterviewFeedback struct {
	Feedback       string `json:"feedback"`
	Rating         int    `json:"rating"`
	Recommendation string `json:"recommendation"`
}
