package performance

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

func employeeQuery(employeeID string) url.Values {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	return q
}

func (s *Service) ListGoals(ctx context.Context, employeeID string) ([]Goal, error) {
	var out []Goal
	if err := s.API.Get(ctx, "/performance/goals", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Goal", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateGoal(ctx context.Context, payload CreateGoal) (Goal, error) {
	var out Goal
	if err := s.API.Post(ctx, "/performance/goals", payload, &out); err != nil {
		return Goal{}, err
	}
	if err := schema.Validate("Goal", out); err != nil {
		return Goal{}, err
	}
	return out, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id string, payload UpdateGoal) (Goal, error) {
	var out Goal
	if err := s.API.Put(ctx, "/performance/goals/"+id, payload, &out); err != nil {
		return Goal{}, err
	}
	if err := schema.Validate("Goal", out); err != nil {
		return Goal{}, err
	}
	return out, nil
}

func (s *Service) ListFeedback(ctx context.Context, employeeID string) ([]Feedback, error) {
	var out []Feedback
	if err := s.API.Get(ctx, "/performance/feedback", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Feedback", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateFeedback(ctx context.Context, payload CreateFeedback) (Feedback, error) {
	var out Feedback
	if err := s.API.Post(ctx, "/performance/feedback", payload, &out); err != nil {
		return Feedback{}, err
	}
	if err := schema.Validate("Feedback", out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

func (s *Service) ListAppraisals(ctx context.Context, employeeID string) ([]Appraisal, error) {
	var out []Appraisal
	if err := s.API.Get(ctx, "/performance/appraisals", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Appraisal", out); err != nil {
		return nil, err
	}
	return out, nil
}
