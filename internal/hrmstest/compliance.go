package hrmstest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/compliance"
)

func (s *Server) registerComplianceRoutes(r chi.Router) {
	r.Route("/compliance", func(r chi.Router) {
		r.Get("/checks", s.handleListChecks)
		r.Post("/checks", s.handleCreateCheck)
		r.Put("/checks/{checkID}", s.handleUpdateCheck)
		r.Get("/audit-logs", s.handleListAuditLogs)
		r.Get("/reports", s.handleListReports)
		r.Post("/reports/generate", s.handleGenerateReport)
		r.Get("/reports/{reportID}/download", s.handleDownloadReport)
	})
}

// audit appends an append-only trail row. Must hold s.mu.
func (s *Server) audit(userID, action, resourceType, resourceID string, oldValues, newValues any) {
	row := compliance.AuditLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Timestamp:    s.timestamp(),
	}
	if oldValues != nil {
		if raw, err := json.Marshal(oldValues); err == nil {
			row.OldValues = raw
		}
	}
	if newValues != nil {
		if raw, err := json.Marshal(newValues); err == nil {
			row.NewValues = raw
		}
	}
	s.state.auditLogs = append(s.state.auditLogs, row)
}

func (s *Server) handleListChecks(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]compliance.Check, 0, len(s.state.checks))
	for _, c := range s.state.checks {
		if employeeID != "" && c.EmployeeID != employeeID {
			continue
		}
		out = append(out, c)
	}
	success(w, r, out)
}

func (s *Server) handleCreateCheck(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	var payload compliance.CreateCheck
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.EmployeeID == "" || payload.CheckType == "" || payload.DueDate == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id, check_type and due_date are required")
		return
	}

	now := s.timestamp()
	check := compliance.Check{
		ID:                uuid.NewString(),
		EmployeeID:        payload.EmployeeID,
		CheckType:         payload.CheckType,
		Description:       payload.Description,
		DueDate:           payload.DueDate,
		Status:            "pending",
		ComplianceOfficer: payload.ComplianceOfficer,
		DocumentsRequired: payload.DocumentsRequired,
		CreatedAt:         &now,
	}
	s.mu.Lock()
	s.state.checks = append(s.state.checks, check)
	s.audit(caller.UserID, "compliance.check.create", "compliance_check", check.ID, nil, check)
	s.mu.Unlock()
	created(w, r, check)
}

func (s *Server) handleUpdateCheck(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "checkID")
	var payload compliance.UpdateCheck
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, check := range s.state.checks {
		if check.ID != id {
			continue
		}
		before := check
		if payload.Status != nil {
			check.Status = *payload.Status
		}
		if payload.CompletedDate != nil {
			check.CompletedDate = payload.CompletedDate
		}
		if payload.Notes != nil {
			check.Notes = payload.Notes
		}
		s.state.checks[i] = check
		s.audit(caller.UserID, "compliance.check.update", "compliance_check", check.ID, before, check)
		success(w, r, check)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "compliance check not found")
}

func (s *Server) handleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	q := r.URL.Query()
	userID := q.Get("user_id")
	resourceType := q.Get("resource_type")
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]compliance.AuditLog, 0, len(s.state.auditLogs))
	for _, row := range s.state.auditLogs {
		if userID != "" && row.UserID != userID {
			continue
		}
		if resourceType != "" && row.ResourceType != resourceType {
			continue
		}
		if startDate != "" && row.Timestamp[:10] < startDate {
			continue
		}
		if endDate != "" && row.Timestamp[:10] > endDate {
			continue
		}
		out = append(out, row)
	}
	success(w, r, out)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]compliance.Report{}, s.state.reports...)
	success(w, r, out)
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	var payload compliance.GenerateReport
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.ReportType == "" || payload.PeriodStart == "" || payload.PeriodEnd == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "report_type, period_start and period_end are required")
		return
	}

	report := compliance.Report{
		ID:          uuid.NewString(),
		ReportType:  payload.ReportType,
		GeneratedBy: caller.UserID,
		GeneratedAt: s.timestamp(),
		PeriodStart: payload.PeriodStart,
		PeriodEnd:   payload.PeriodEnd,
		FilePath:    "/reports/" + payload.ReportType + ".pdf",
		Status:      "completed",
	}
	s.mu.Lock()
	s.state.reports = append(s.state.reports, report)
	s.audit(caller.UserID, "compliance.report.generate", "compliance_report", report.ID, nil, payload)
	s.mu.Unlock()
	created(w, r, report)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "reportID")

	s.mu.Lock()
	var report *compliance.Report
	for i := range s.state.reports {
		if s.state.reports[i].ID == id {
			report = &s.state.reports[i]
			break
		}
	}
	checks := append([]compliance.Check{}, s.state.checks...)
	s.mu.Unlock()
	if report == nil {
		fail(w, r, http.StatusNotFound, "not_found", "report not found")
		return
	}

	pdf, err := renderCompliancePDF(*report, checks)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "render_failed", "failed to render report")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
