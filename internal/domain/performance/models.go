package performance

// Goal is a per-employee objective over a period. Progress is derived from
// achieved/target; achieved_value and status are server-assigned.
type Goal struct {
	ID            string   `json:"id" validate:"required"`
	EmployeeID    string   `json:"employee_id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	KPIMetric     string   `json:"kpi_metric" validate:"required"`
	TargetValue   float64  `json:"target_value"`
	AchievedValue *float64 `json:"achieved_value,omitempty"`
	Weight        float64  `json:"weight" validate:"gte=0"`
	PeriodStart   string   `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd     string   `json:"period_end" validate:"required,datetime=2006-01-02"`
	Status        string   `json:"status" validate:"required,oneof=draft active completed cancelled"`
	CreatedBy     string   `json:"created_by" validate:"required"`
	ApprovedBy    *string  `json:"approved_by,omitempty"`
	CreatedAt     *string  `json:"created_at,omitempty"`
	UpdatedAt     *string  `json:"updated_at,omitempty"`
}

// Progress returns the achieved/target ratio clamped to [0,1]; zero when no
// value has been recorded or the target is zero.
func (g Goal) Progress() float64 {
	if g.AchievedValue == nil || g.TargetValue <= 0 {
		return 0
	}
	ratio := *g.AchievedValue / g.TargetValue
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

type CreateGoal struct {
	EmployeeID  string  `json:"employee_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	KPIMetric   string  `json:"kpi_metric"`
	TargetValue float64 `json:"target_value"`
	Weight      float64 `json:"weight"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	CreatedBy   string  `json:"created_by"`
}

type UpdateGoal struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TargetValue   *float64 `json:"target_value,omitempty"`
	AchievedValue *float64 `json:"achieved_value,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

type Feedback struct {
	ID                     string  `json:"id" validate:"required"`
	EmployeeID             string  `json:"employee_id" validate:"required"`
	ReviewerID             string  `json:"reviewer_id" validate:"required"`
	Role                   string  `json:"role" validate:"required,oneof=manager peer subordinate self"`
	FeedbackType           string  `json:"feedback_type" validate:"required,oneof=performance behavioral development"`
	Rating                 int     `json:"rating" validate:"required,min=1,max=5"`
	FeedbackText           string  `json:"feedback_text" validate:"required"`
	Strengths              *string `json:"strengths,omitempty"`
	AreasForImprovement    *string `json:"areas_for_improvement,omitempty"`
	DevelopmentSuggestions *string `json:"development_suggestions,omitempty"`
	Period                 string  `json:"period" validate:"required"`
	IsAnonymous            bool    `json:"is_anonymous"`
	CreatedAt              *string `json:"created_at,omitempty"`
}

type CreateFeedback struct {
	EmployeeID             string  `json:"employee_id"`
	ReviewerID             string  `json:"reviewer_id"`
	Role                   string  `json:"role"`
	FeedbackType           string  `json:"feedback_type"`
	Rating                 int     `json:"rating"`
	FeedbackText           string  `json:"feedback_text"`
	Strengths              *string `json:"strengths,omitempty"`
	AreasForImprovement    *string `json:"areas_for_improvement,omitempty"`
	DevelopmentSuggestions *string `json:"development_suggestions,omitempty"`
	Period                 string  `json:"period"`
	IsAnonymous            bool    `json:"is_anonymous"`
}

type Appraisal struct {
	ID                         string   `json:"id" validate:"required"`
	EmployeeID                 string   `json:"employee_id" validate:"required"`
	CycleName                  string   `json:"cycle_name" validate:"required"`
	CycleStart                 string   `json:"cycle_start" validate:"required,datetime=2006-01-02"`
	CycleEnd                   string   `json:"cycle_end" validate:"required,datetime=2006-01-02"`
	SelfAssessmentCompleted    bool     `json:"self_assessment_completed"`
	ManagerAssessmentCompleted bool     `json:"manager_assessment_completed"`
	OverallRating              *float64 `json:"overall_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	PerformanceSummary         *string  `json:"performance_summary,omitempty"`
	Achievements               *string  `json:"achievements,omitempty"`
	DevelopmentAreas           *string  `json:"development_areas,omitempty"`
	GoalsNextPeriod            *string  `json:"goals_next_period,omitempty"`
	SalaryRecommendation       *string  `json:"salary_recommendation,omitempty" validate:"omitempty,oneof=no_change increase bonus promotion"`
	Status                     string   `json:"status" validate:"required,oneof=not_started in_progress completed approved"`
	CreatedAt                  *string  `json:"created_at,omitempty"`
	UpdatedAt                  *string  `json:"updated_at,omitempty"`
}
