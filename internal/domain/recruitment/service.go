package recruitment

import (
	"context"
	"net/url"

	"hrmclient/internal/api"
	"hrmclient/internal/schema"
)

type Service struct {
	API *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{API: client}
}

func (s *Service) ListRequisitions(ctx context.Context) ([]JobRequisition, error) {
	var out []JobRequisition
	if err := s.API.Get(ctx, "/recruitment/requisitions", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("JobRequisition", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateRequisition(ctx context.Context, payload CreateRequisition) (JobRequisition, error) {
	var out JobRequisition
	if err := s.API.Post(ctx, "/recruitment/requisitions", payload, &out); err != nil {
		return JobRequisition{}, err
	}
	if err := schema.Validate("JobRequisition", out); err != nil {
		return JobRequisition{}, err
	}
	return out, nil
}

func (s *Service) UpdateRequisition(ctx context.Context, id string, payload UpdateRequisition) (JobRequisition, error) {
	var out JobRequisition
	if err := s.API.Put(ctx, "/recruitment/requisitions/"+id, payload, &out); err != nil {
		return JobRequisition{}, err
	}
	if err := schema.Validate("JobRequisition", out); err != nil {
		return JobRequisition{}, err
	}
	return out, nil
}

func (s *Service) ApproveRequisition(ctx context.Context, id string) error {
	return s.API.Post(ctx, "/recruitment/requisitions/"+id+"/approve", nil, nil)
}

func (s *Service) ListVacancies(ctx context.Context) ([]Vacancy, error) {
	var out []Vacancy
	if err := s.API.Get(ctx, "/recruitment/vacancies", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Vacancy", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateVacancy(ctx context.Context, payload CreateVacancy) (Vacancy, error) {
	var out Vacancy
	if err := s.API.Post(ctx, "/recruitment/vacancies", payload, &out); err != nil {
		return Vacancy{}, err
	}
	if err := schema.Validate("Vacancy", out); err != nil {
		return Vacancy{}, err
	}
	return out, nil
}

func (s *Service) ListApplications(ctx context.Context, vacancyID string) ([]Application, error) {
	q := url.Values{}
	if vacancyID != "" {
		q.Set("vacancy_id", vacancyID)
	}
	var out []Application
	if err := s.API.Get(ctx, "/recruitment/applications", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Application", out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicationStatus moves an application along the pipeline. Whether
// a transition is legal is the server's call.
func (s *Service) UpdateApplicationStatus(ctx context.Context, id, status string) (Application, error) {
	var out Application
	if err := s.API.Put(ctx, "/recruitment/applications/"+id+"/status", map[string]string{"status": status}, &out); err != nil {
		return Application{}, err
	}
	if err := schema.Validate("Application", out); err != nil {
		return Application{}, err
	}
	return out, nil
}

func (s *Service) ListInterviews(ctx context.Context) ([]Interview, error) {
	var out []Interview
	if err := s.API.Get(ctx, "/recruitment/interviews", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Interview", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ScheduleInterview(ctx context.Context, payload ScheduleInterview) (Interview, error) {
	var out Interview
	if err := s.API.Post(ctx, "/recruitment/interviews", payload, &out); err != nil {
		return Interview{}, err
	}
	if err := schema.Validate("Interview", out); err != nil {
		return Interview{}, err
	}
	return out, nil
}

func (s *Service) SubmitInterviewFeedback(ctx context.Context, id string, payload InterviewFeedback) (Interview, error) {
	var out Interview
	if err := s.API.Put(ctx, "/recruitment/interviews/"+id+"/feedback", payload, &out); err != nil {
		return Interview{}, err
	}
	if err := schema.Validate("Interview", out); err != nil {
		return Interview{}, err
	}
	return out, nil
}
