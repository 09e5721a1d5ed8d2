package payroll

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

func (s *Service) ListPayslips(ctx context.Context, employeeID string) ([]Payslip, error) {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	var out []Payslip
	if err := s.API.Get(ctx, "/ess/payslips", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Payslip", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetPayslip(ctx context.Context, id string) (Payslip, error) {
	var out Payslip
	if err := s.API.Get(ctx, "/ess/payslips/"+id, nil, &out); err != nil {
		return Payslip{}, err
	}
	if err := schema.Validate("Payslip", out); err != nil {
		return Payslip{}, err
	}
	return out, nil
}

// DownloadPayslip returns the rendered payslip document; binary payloads
// bypass schema validation.
func (s *Service) DownloadPayslip(ctx context.Context, id string) ([]byte, error) {
	return s.API.GetBlob(ctx, "/ess/payslips/"+id+"/download", nil)
}

func (s *Service) SalaryComponents(ctx context.Context, employeeID string) ([]SalaryComponent, error) {
	var out []SalaryComponent
	if err := s.API.Get(ctx, "/employees/"+employeeID+"/salary-components", nil, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("SalaryComponent", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) SalaryStructures(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	q := url.Values{}
	q.Set("employee_id", employeeID)
	var out []SalaryStructure
	if err := s.API.Get(ctx, "/payroll/salary-structures", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("SalaryStructure", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListLoans(ctx context.Context, employeeID string) ([]Loan, error) {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	var out []Loan
	if err := s.API.Get(ctx, "/payroll/loans", q, &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Loan", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateLoan(ctx context.Context, payload CreateLoan) (Loan, error) {
	var out Loan
	if err := s.API.Post(ctx, "/payroll/loans", payload, &out); err != nil {
		return Loan{}, err
	}
	if err := schema.Validate("Loan", out); err != nil {
		return Loan{}, err
	}
	return out, nil
}

// Process kicks off a payroll run for the given month.
func (s *Service) Process(ctx context.Context, month, year int) error {
	payload := map[string]string{
		"month": strconv.Itoa(month),
		"year":  strconv.Itoa(year),
	}
	return s.API.Post(ctx, "/payroll/process", payload, nil)
}
