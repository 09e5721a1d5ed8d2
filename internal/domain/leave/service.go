package leave

import (
	"context"
	"net/url"
	"strconv"

	"hrmclient/internal/api"
	"hrmclient/internal/schema"
)

type Service struct {
	API *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{API: client}
}

type ListFilter struct {
	EmployeeID string
	Status     string
}

func (f ListFilter) values() url.Values {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

func (s *Service) ListRequests(ctx context.Context, filter ListFilter) ([]Request, error) {
	var out []Request
	if err := s.API.Get(ctx, "/leaves", filter.values(), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("LeaveRequest", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (Request, error) {
	var out Request
	if err := s.API.Get(ctx, "/leaves/"+id, nil, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("LeaveRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

// CreateRequest submits a new leave request. Date-range rules (ordering,
// balance coverage) are enforced server-side; the client only checks shape.
func (s *Service) CreateRequest(ctx context.Context, payload CreateRequest) (Request, error) {
	var out Request
	if err := s.API.Post(ctx, "/leaves", payload, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("LeaveRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) UpdateRequest(ctx context.Context, id string, payload UpdateRequest) (Request, error) {
	var out Request
	if err := s.API.Put(ctx, "/leaves/"+id, payload, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("LeaveRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, id string) (Request, error) {
	var out Request
	if err := s.API.Post(ctx, "/leaves/"+id+"/approve", nil, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("LeaveRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) Reject(ctx context.Context, id, reason string) (Request, error) {
	var out Request
	if err := s.API.Post(ctx, "/leaves/"+id+"/reject", map[string]string{"reason": reason}, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("LeaveRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) ListTypes(ctx context.Context) ([]LeaveType, error) {
	var out []LeaveType
	if err := s.API.Get(ctx, "/leaves/types", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("LeaveType", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListBalances(ctx context.Context, employeeID string, year int) ([]Balance, error) {
	q := url.Values{}
	q.Set("employee_id", employeeID)
	q.Set("year", strconv.Itoa(year))
	var out []Balance
	if err := s.API.Get(ctx, "/leaves/balances", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("LeaveBalance", out); err != nil {
		return nil, err
	}
	return out, nil
}
