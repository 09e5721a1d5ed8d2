package hrmstest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/attendance"
)

func (s *Server) registerAttendanceRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", s.handleListAttendance)
		r.Post("/clock", s.handleClock)
		r.Get("/summary", s.handleAttendanceSummary)
	})
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	q := r.URL.Query()
	employeeID := q.Get("employee_id")
	date := q.Get("date")
	startDate := q.Get("start_date")
	endDate := q.Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]attendance.Record, 0, len(s.state.attendance))
	for _, rec := range s.state.attendance {
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		if startDate != "" && rec.Date < startDate {
			continue
		}
		if endDate != "" && rec.Date > endDate {
			continue
		}
		out = append(out, rec)
	}
	success(w, r, out)
}

func (s *Server) handleClock(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var event attendance.ClockEvent
	if !decodeBody(w, r, &event) {
		return
	}
	if event.EmployeeID == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id is required")
		return
	}
	when := s.now()
	if event.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, event.Timestamp)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "invalid_payload", "timestamp must be RFC 3339")
			return
		}
		when = parsed
	}
	stamp := when.UTC().Format(time.RFC3339)
	date := when.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, rec := range s.state.attendance {
		if rec.EmployeeID == event.EmployeeID && rec.Date == date {
			idx = i
			break
		}
	}

	switch event.Action {
	case attendance.ActionClockIn:
		if idx >= 0 && s.state.attendance[idx].ClockIn != nil {
			fail(w, r, http.StatusConflict, "already_clocked_in", "already clocked in today")
			return
		}
		now := s.timestamp()
		rec := attendance.Record{
			ID:         uuid.NewString(),
			EmployeeID: event.EmployeeID,
			Date:       date,
			ClockIn:    &stamp,
			Status:     attendance.StatusPresent,
			Location:   event.Location,
			DeviceInfo: event.DeviceInfo,
			CreatedAt:  &now,
		}
		if idx >= 0 {
			rec.ID = s.state.attendance[idx].ID
			s.state.attendance[idx] = rec
		} else {
			s.state.attendance = append(s.state.attendance, rec)
		}
		created(w, r, rec)

	case attendance.ActionClockOut:
		if idx < 0 || s.state.attendance[idx].ClockIn == nil {
			fail(w, r, http.StatusConflict, "not_clocked_in", "must clock in before clocking out")
			return
		}
		rec := s.state.attendance[idx]
		if rec.ClockOut != nil {
			fail(w, r, http.StatusConflict, "already_clocked_out", "already clocked out today")
			return
		}
		rec.ClockOut = &stamp
		if in, err := time.Parse(time.RFC3339, *rec.ClockIn); err == nil {
			total := when.UTC().Sub(in.UTC()).Hours()
			if total < 0 {
				total = 0
			}
			rec.TotalHours = &total
			overtime := total - 8
			if overtime < 0 {
				overtime = 0
			}
			rec.OvertimeHours = &overtime
		}
		s.state.attendance[idx] = rec
		success(w, r, rec)

	case attendance.ActionBreakStart:
		if idx < 0 || s.state.attendance[idx].ClockIn == nil {
			fail(w, r, http.StatusConflict, "not_clocked_in", "must clock in before starting a break")
			return
		}
		rec := s.state.attendance[idx]
		rec.BreakStart = &stamp
		s.state.attendance[idx] = rec
		success(w, r, rec)

	case attendance.ActionBreakEnd:
		if idx < 0 || s.state.attendance[idx].BreakStart == nil {
			fail(w, r, http.StatusConflict, "no_break", "must start a break before ending it")
			return
		}
		rec := s.state.attendance[idx]
		rec.BreakEnd = &stamp
		s.state.attendance[idx] = rec
		success(w, r, rec)

	default:
		fail(w, r, http.StatusBadRequest, "invalid_payload", "unknown clock action")
	}
}

func (s *Server) handleAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	q := r.URL.Query()
	employeeID := q.Get("employee_id")
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))
	if employeeID == "" || month < 1 || month > 12 || year == 0 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id, month and year are required")
		return
	}
	prefix := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")

	s.mu.Lock()
	defer s.mu.Unlock()
	var summary attendance.Summary
	for _, rec := range s.state.attendance {
		if rec.EmployeeID != employeeID || len(rec.Date) < 7 || rec.Date[:7] != prefix {
			continue
		}
		summary.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusPartial:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLate:
			summary.PresentDays++
			summary.LateDays++
		}
		if rec.TotalHours != nil {
			summary.TotalHours += *rec.TotalHours
		}
	}
	success(w, r, summary)
}
