package employees

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

// ListFilter narrows the employee collection; zero values are omitted.
type ListFilter struct {
	DepartmentID     string
	EmploymentStatus string
}

func (f ListFilter) values() url.Values {
	q := url.Values{}
	if f.DepartmentID != "" {
		q.Set("department_id", f.DepartmentID)
	}
	if f.EmploymentStatus != "" {
		q.Set("employment_status", f.EmploymentStatus)
	}
	return q
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Employee, error) {
	var out []Employee
	if err := s.API.Get(ctx, "/employees", filter.values(), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Employee", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	var out Employee
	if err := s.API.Get(ctx, "/employees/"+id, nil, &out); err != nil {
		return Employee{}, err
	}
	if err := schema.Validate("Employee", out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, payload CreateEmployee) (Employee, error) {
	var out Employee
	if err := s.API.Post(ctx, "/employees", payload, &out); err != nil {
		return Employee{}, err
	}
	if err := schema.Validate("Employee", out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, payload UpdateEmployee) (Employee, error) {
	var out Employee
	if err := s.API.Put(ctx, "/employees/"+id, payload, &out); err != nil {
		return Employee{}, err
	}
	if err := schema.Validate("Employee", out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.API.Delete(ctx, "/employees/"+id)
}

func (s *Service) Documents(ctx context.Context, employeeID string) ([]Document, error) {
	var out []Document
	if err := s.API.Get(ctx, "/employees/"+employeeID+"/documents", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Document", out); err != nil {
		return nil, err
	}
	return out, nil
}
