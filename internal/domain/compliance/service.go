package compliance

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

func (s *Service) ListChecks(ctx context.Context, employeeID string) ([]Check, error) {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	var out []Check
	if err := s.API.Get(ctx, "/compliance/checks", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("ComplianceCheck", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateCheck(ctx context.Context, payload CreateCheck) (Check, error) {
	var out Check
	if err := s.API.Post(ctx, "/compliance/checks", payload, &out); err != nil {
		return Check{}, err
	}
	if err := schema.Validate("ComplianceCheck", out); err != nil {
		return Check{}, err
	}
	return out, nil
}

func (s *Service) UpdateCheck(ctx context.Context, id string, payload UpdateCheck) (Check, error) {
	var out Check
	if err := s.API.Put(ctx, "/compliance/checks/"+id, payload, &out); err != nil {
		return Check{}, err
	}
	if err := schema.Validate("ComplianceCheck", out); err != nil {
		return Check{}, err
	}
	return out, nil
}

// AuditFilter narrows the audit trail; all fields optional.
type AuditFilter struct {
	UserID       string
	ResourceType string
	StartDate    string
	EndDate      string
}

func (f AuditFilter) values() url.Values {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("user_id", f.UserID)
	}
	if f.ResourceType != "" {
		q.Set("resource_type", f.ResourceType)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

func (s *Service) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]AuditLog, error) {
	var out []AuditLog
	if err := s.API.Get(ctx, "/compliance/audit-logs", filter.values(), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("AuditLog", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListReports(ctx context.Context) ([]Report, error) {
	var out []Report
	if err := s.API.Get(ctx, "/compliance/reports", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("ComplianceReport", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GenerateReport(ctx context.Context, payload GenerateReport) (Report, error) {
	var out Report
	if err := s.API.Post(ctx, "/compliance/reports/generate", payload, &out); err != nil {
		return Report{}, err
	}
	if err := schema.Validate("ComplianceReport", out); err != nil {
		return Report{}, err
	}
	return out, nil
}

func (s *Service) DownloadReport(ctx context.Context, id string) ([]byte, error) {
	return s.API.GetBlob(ctx, "/compliance/reports/"+id+"/download", nil)
}
