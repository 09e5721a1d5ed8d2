package attendance

import (
	"context"
	"net/url"
	"strconv"
	"time"

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
	Date       string
	StartDate  string
	EndDate    string
}

func (f ListFilter) values() url.Values {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

func (s *Service) ListRecords(ctx context.Context, filter ListFilter) ([]Record, error) {
	var out []Record
	if err := s.API.Get(ctx, "/attendance", filter.values(), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("AttendanceRecord", out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clock appends a clock transition. Whether the action is permitted (e.g.
// a second clock-in on the same day) is decided server-side.
func (s *Service) Clock(ctx context.Context, event ClockEvent) (Record, error) {
	var out Record
	if err := s.API.Post(ctx, "/attendance/clock", event, &out); err != nil {
		return Record{}, err
	}
	if err := schema.Validate("AttendanceRecord", out); err != nil {
		return Record{}, err
	}
	return out, nil
}

// Today returns the employee's record for the current date, or nil when the
// day has no record yet. The caller derives clock-in/clock-out availability
// from it.
func (s *Service) Today(ctx context.Context, employeeID string) (*Record, error) {
	filter := ListFilter{EmployeeID: employeeID, Date: time.Now().Format("2006-01-02")}
	records, err := s.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (s *Service) Summary(ctx context.Context, employeeID string, month, year int) (Summary, error) {
	q := url.Values{}
	q.Set("employee_id", employeeID)
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	var out Summary
	if err := s.API.Get(ctx, "/attendance/summary", q, &out); err != nil {
		return Summary{}, err
	}
	return out, nil
}
