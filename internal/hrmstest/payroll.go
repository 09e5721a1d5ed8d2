package hrmstest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hrmclient/internal/domain/payroll"
)

func (s *Server) registerPayrollRoutes(r chi.Router) {
	r.Route("/ess/payslips", func(r chi.Router) {
		r.Get("/", s.handleListPayslips)
		r.Get("/{payslipID}", s.handleGetPayslip)
		r.Get("/{payslipID}/download", s.handleDownloadPayslip)
	})
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/salary-structures", s.handleSalaryStructures)
		r.Get("/loans", s.handleListLoans)
		r.Post("/loans", s.handleCreateLoan)
		r.Post("/process", s.handleProcessPayroll)
	})
}

func (s *Server) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payroll.Payslip, 0, len(s.state.payslips))
	for _, p := range s.state.payslips {
		if employeeID != "" && p.EmployeeID != employeeID {
			continue
		}
		out = append(out, p)
	}
	success(w, r, out)
}

func (s *Server) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "payslipID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.payslips {
		if p.ID == id {
			success(w, r, p)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "payslip not found")
}

func (s *Server) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "payslipID")

	s.mu.Lock()
	var slip *payroll.Payslip
	for i := range s.state.payslips {
		if s.state.payslips[i].ID == id {
			slip = &s.state.payslips[i]
			break
		}
	}
	s.mu.Unlock()
	if slip == nil {
		fail(w, r, http.StatusNotFound, "not_found", "payslip not found")
		return
	}

	pdf, err := renderPayslipPDF(*slip)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "render_failed", "failed to render payslip")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleSalaryComponents(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "employeeID")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payroll.SalaryComponent, 0)
	for _, c := range s.state.components {
		if c.EmployeeID == id {
			out = append(out, c)
		}
	}
	success(w, r, out)
}

func (s *Server) handleSalaryStructures(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payroll.SalaryStructure, 0, len(s.state.structures))
	for _, st := range s.state.structures {
		if employeeID != "" && st.EmployeeID != employeeID {
			continue
		}
		out = append(out, st)
	}
	success(w, r, out)
}

func (s *Server) handleListLoans(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payroll.Loan, 0, len(s.state.loans))
	for _, l := range s.state.loans {
		if employeeID != "" && l.EmployeeID != employeeID {
			continue
		}
		out = append(out, l)
	}
	success(w, r, out)
}

func (s *Server) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload payroll.CreateLoan
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.EmployeeID == "" || payload.Installments <= 0 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id and a positive installments count are required")
		return
	}

	now := s.timestamp()
	loan := payroll.Loan{
		ID:                uuid.NewString(),
		EmployeeID:        payload.EmployeeID,
		LoanType:          payload.LoanType,
		Amount:            payload.Amount,
		Installments:      payload.Installments,
		InstallmentAmount: payload.InstallmentAmount,
		RemainingAmount:   payload.Amount,
		StartDate:         payload.StartDate,
		Status:            payroll.LoanStatusActive,
		CreatedAt:         &now,
	}
	s.mu.Lock()
	s.state.loans = append(s.state.loans, loan)
	s.mu.Unlock()
	created(w, r, loan)
}

// gosiRate is the employee share of the social insurance contribution,
// applied to basic + housing.
var gosiRate = decimal.NewFromFloat(0.0975)

func (s *Server) handleProcessPayroll(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	var payload struct {
		Month string `json:"month"`
		Year  string `json:"year"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	month, err := strconv.Atoi(payload.Month)
	if err != nil || month < 1 || month > 12 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "month must be between 1 and 12")
		return
	}
	year, err := strconv.Atoi(payload.Year)
	if err != nil || year == 0 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "year must be a number")
		return
	}
	monthName := time.Month(month).String()

	s.mu.Lock()
	defer s.mu.Unlock()
	// processed payslips are immutable, so a period can only run once
	for _, p := range s.state.payslips {
		if p.Month == monthName && p.Year == year {
			fail(w, r, http.StatusConflict, "already_processed", "payroll already processed for this period")
			return
		}
	}

	now := s.timestamp()
	issued := 0
	for _, e := range s.state.employees {
		if e.EmploymentStatus != "Active" {
			continue
		}
		basic := decimal.NewFromFloat(e.BasicSalary)
		housing := decimal.Zero
		if e.HousingAllowance != nil {
			housing = decimal.NewFromFloat(*e.HousingAllowance)
		}
		transport := decimal.Zero
		if e.TransportAllowance != nil {
			transport = decimal.NewFromFloat(*e.TransportAllowance)
		}
		other := decimal.Zero
		if e.OtherAllowances != nil {
			other = decimal.NewFromFloat(*e.OtherAllowances)
		}
		gross := basic.Add(housing).Add(transport).Add(other)
		gosi := basic.Add(housing).Mul(gosiRate).Round(2)
		s.state.payslips = append(s.state.payslips, payroll.Payslip{
			ID:                 uuid.NewString(),
			EmployeeID:         e.ID,
			Month:              monthName,
			Year:               year,
			BasicSalary:        basic,
			HousingAllowance:   housing,
			TransportAllowance: transport,
			OtherAllowances:    other,
			GrossSalary:        gross,
			GosiEmployee:       gosi,
			TotalDeductions:    gosi,
			NetPay:             gross.Sub(gosi),
			Status:             payroll.PayslipStatusProcessed,
			ProcessedBy:        &c.UserID,
			ProcessedAt:        &now,
			CreatedAt:          &now,
		})
		issued++
	}
	success(w, r, map[string]int{"payslips_issued": issued})
}
