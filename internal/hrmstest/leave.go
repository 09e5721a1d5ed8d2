package hrmstest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/leave"
)

func (s *Server) registerLeaveRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", s.handleListLeaveRequests)
		r.Post("/", s.handleCreateLeaveRequest)
		r.Get("/types", s.handleListLeaveTypes)
		r.Get("/balances", s.handleListLeaveBalances)
		r.Get("/{requestID}", s.handleGetLeaveRequest)
		r.Put("/{requestID}", s.handleUpdateLeaveRequest)
		r.Post("/{requestID}/approve", s.handleApproveLeaveRequest)
		r.Post("/{requestID}/reject", s.handleRejectLeaveRequest)
	})
}

func leaveDays(start, end string) (float64, bool) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return 0, false
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return 0, false
	}
	if from.After(to) {
		return 0, false
	}
	return to.Sub(from).Hours()/24 + 1, true
}

func (s *Server) handleListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]leave.Request, 0, len(s.state.leaveRequests))
	for _, req := range s.state.leaveRequests {
		if employeeID != "" && req.EmployeeID != employeeID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, req)
	}
	success(w, r, out)
}

func (s *Server) handleGetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "requestID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.state.leaveRequests {
		if req.ID == id {
			success(w, r, req)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
}

func (s *Server) handleCreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload leave.CreateRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	days, ok := leaveDays(payload.StartDate, payload.EndDate)
	if !ok {
		fail(w, r, http.StatusBadRequest, "invalid_dates", "start_date must not be after end_date")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var knownType bool
	for _, lt := range s.state.leaveTypes {
		if lt.ID == payload.LeaveTypeID {
			knownType = true
			break
		}
	}
	if !knownType {
		fail(w, r, http.StatusNotFound, "not_found", "leave type not found")
		return
	}

	now := s.timestamp()
	req := leave.Request{
		ID:          uuid.NewString(),
		EmployeeID:  payload.EmployeeID,
		LeaveTypeID: payload.LeaveTypeID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		TotalDays:   days,
		Reason:      payload.Reason,
		Status:      leave.StatusPending,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	s.state.leaveRequests = append(s.state.leaveRequests, req)
	created(w, r, req)
}

func (s *Server) handleUpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "requestID")
	var payload leave.UpdateRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.leaveRequests {
		if req.ID != id {
			continue
		}
		if req.Status != leave.StatusPending {
			fail(w, r, http.StatusConflict, "not_editable", "only pending requests can be edited")
			return
		}
		if payload.StartDate != nil {
			req.StartDate = *payload.StartDate
		}
		if payload.EndDate != nil {
			req.EndDate = *payload.EndDate
		}
		if payload.Reason != nil {
			req.Reason = *payload.Reason
		}
		days, ok := leaveDays(req.StartDate, req.EndDate)
		if !ok {
			fail(w, r, http.StatusBadRequest, "invalid_dates", "start_date must not be after end_date")
			return
		}
		req.TotalDays = days
		now := s.timestamp()
		req.UpdatedAt = &now
		s.state.leaveRequests[i] = req
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
}

func (s *Server) handleApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "requestID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.leaveRequests {
		if req.ID != id {
			continue
		}
		if req.Status != leave.StatusPending {
			fail(w, r, http.StatusConflict, "invalid_transition", "only pending requests can be approved")
			return
		}
		now := s.timestamp()
		req.Status = leave.StatusApproved
		req.ApprovedBy = &c.UserID
		req.ApprovedAt = &now
		req.UpdatedAt = &now
		s.state.leaveRequests[i] = req
		s.applyBalanceUsage(req)
		s.audit(c.UserID, "leave.request.approve", "leave_request", req.ID, nil, req)
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
}

// applyBalanceUsage deducts an approved request's days from the matching
// balance row. Must hold s.mu.
func (s *Server) applyBalanceUsage(req leave.Request) {
	year := s.now().Year()
	if from, err := time.Parse("2006-01-02", req.StartDate); err == nil {
		year = from.Year()
	}
	for i, b := range s.state.balances {
		if b.EmployeeID == req.EmployeeID && b.LeaveTypeID == req.LeaveTypeID && b.Year == year {
			b.UsedDays += req.TotalDays
			b.RemainingBalance = b.AllocatedDays - b.UsedDays
			s.state.balances[i] = b
			return
		}
	}
}

func (s *Server) handleRejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "requestID")
	var payload struct {
		Reason string `json:"reason"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Reason == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "rejection reason is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.leaveRequests {
		if req.ID != id {
			continue
		}
		if req.Status != leave.StatusPending {
			fail(w, r, http.StatusConflict, "invalid_transition", "only pending requests can be rejected")
			return
		}
		now := s.timestamp()
		req.Status = leave.StatusRejected
		req.RejectionReason = &payload.Reason
		req.ApprovedBy = &c.UserID
		req.UpdatedAt = &now
		s.state.leaveRequests[i] = req
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "leave request not found")
}

func (s *Server) handleListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	success(w, r, s.state.leaveTypes)
}

func (s *Server) handleListLeaveBalances(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")
	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "invalid_payload", "year must be a number")
			return
		}
		year = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]leave.Balance, 0, len(s.state.balances))
	for _, b := range s.state.balances {
		if employeeID != "" && b.EmployeeID != employeeID {
			continue
		}
		if year != 0 && b.Year != year {
			continue
		}
		out = append(out, b)
	}
	success(w, r, out)
}
