package training

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

func (s *Service) ListPrograms(ctx context.Context) ([]Program, error) {
	var out []Program
	if err := s.API.Get(ctx, "/training/programs", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("TrainingProgram", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListRequests(ctx context.Context, employeeID string) ([]Request, error) {
	var out []Request
	if err := s.API.Get(ctx, "/training/requests", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("TrainingRequest", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateRequest(ctx context.Context, payload CreateRequest) (Request, error) {
	var out Request
	if err := s.API.Post(ctx, "/training/requests", payload, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("TrainingRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) ListSkills(ctx context.Context, employeeID string) ([]Skill, error) {
	var out []Skill
	if err := s.API.Get(ctx, "/training/skills", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Skill", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) AddSkill(ctx context.Context, payload CreateSkill) (Skill, error) {
	var out Skill
	if err := s.API.Post(ctx, "/training/skills", payload, &out); err != nil {
		return Skill{}, err
	}
	if err := schema.Validate("Skill", out); err != nil {
		return Skill{}, err
	}
	return out, nil
}

func (s *Service) ListCertifications(ctx context.Context, employeeID string) ([]Certification, error) {
	var out []Certification
	if err := s.API.Get(ctx, "/training/certifications", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Certification", out); err != nil {
		return nil, err
	}
	return out, nil
}
