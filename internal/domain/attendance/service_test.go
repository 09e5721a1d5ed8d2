package attendance_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/attendance"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/hrmstest"
)

func newClient(t *testing.T, baseURL, email string) *api.Client {
	t.Helper()
	var token string
	client := api.New(baseURL, 5*time.Second, func() string { return token })
	var resp auth.AuthResponse
	if err := client.Post(context.Background(), "/auth/login", map[string]string{
		"email":    email,
		"password": hrmstest.SeedPassword,
	}, &resp); err != nil {
		t.Fatalf("login as %s failed: %v", email, err)
	}
	token = resp.Token
	return client
}

func TestClockInThenOut(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()
	svc := attendance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))

	// fixed working-day times so the pair never straddles midnight
	day := time.Now()
	start := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.Local)
	rec, err := svc.Clock(ctx, attendance.ClockEvent{
		EmployeeID: hrmstest.SeedEmployeeID,
		Action:     attendance.ActionClockIn,
		Timestamp:  start.Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if rec.ClockIn == nil || rec.ClockOut != nil {
		t.Fatalf("unexpected record after clock in %+v", rec)
	}
	if rec.Status != attendance.StatusPresent {
		t.Fatalf("unexpected status %s", rec.Status)
	}

	rec, err = svc.Clock(ctx, attendance.ClockEvent{
		EmployeeID: hrmstest.SeedEmployeeID,
		Action:     attendance.ActionClockOut,
		Timestamp:  start.Add(9 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if rec.ClockOut == nil || rec.TotalHours == nil {
		t.Fatalf("clock out must set timestamps and hours %+v", rec)
	}
	if *rec.TotalHours != 9 {
		t.Fatalf("expected 9 hours, got %v", *rec.TotalHours)
	}
	if rec.OvertimeHours == nil || *rec.OvertimeHours != 1 {
		t.Fatalf("expected 1 overtime hour, got %+v", rec.OvertimeHours)
	}
}

func TestDoubleClockInRejected(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()
	svc := attendance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))

	event := attendance.ClockEvent{EmployeeID: hrmstest.SeedEmployeeID, Action: attendance.ActionClockIn}
	if _, err := svc.Clock(ctx, event); err != nil {
		t.Fatalf("first clock in: %v", err)
	}
	_, err := svc.Clock(ctx, event)
	if err == nil {
		t.Fatal("second clock in must be rejected")
	}
	if got := api.ServerMessage(err, "fallback"); got != "already clocked in today" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestClockOutWithoutClockInRejected(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	svc := attendance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))

	_, err := svc.Clock(context.Background(), attendance.ClockEvent{
		EmployeeID: hrmstest.SeedEmployeeID,
		Action:     attendance.ActionClockOut,
	})
	if err == nil {
		t.Fatal("clock out before clock in must be rejected")
	}
}

func TestTodayReflectsCurrentRecord(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()
	svc := attendance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))

	rec, err := svc.Today(ctx, hrmstest.SeedEmployeeID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if rec != nil {
		t.Fatal("no record expected before clocking in")
	}

	if _, err := svc.Clock(ctx, attendance.ClockEvent{EmployeeID: hrmstest.SeedEmployeeID, Action: attendance.ActionClockIn}); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	rec, err = svc.Today(ctx, hrmstest.SeedEmployeeID)
	if err != nil {
		t.Fatalf("today after clock in: %v", err)
	}
	if rec == nil || rec.ClockIn == nil || rec.ClockOut != nil {
		t.Fatalf("today must show an open record, got %+v", rec)
	}
}

func TestMonthlySummary(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()
	svc := attendance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))

	now := time.Now()
	in := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.Local)
	if _, err := svc.Clock(ctx, attendance.ClockEvent{
		EmployeeID: hrmstest.SeedEmployeeID,
		Action:     attendance.ActionClockIn,
		Timestamp:  in.Format(time.RFC3339),
	}); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if _, err := svc.Clock(ctx, attendance.ClockEvent{
		EmployeeID: hrmstest.SeedEmployeeID,
		Action:     attendance.ActionClockOut,
		Timestamp:  in.Add(8 * time.Hour).Format(time.RFC3339),
	}); err != nil {
		t.Fatalf("clock out: %v", err)
	}

	summary, err := svc.Summary(ctx, hrmstest.SeedEmployeeID, int(now.Month()), now.Year())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalDays != 1 || summary.PresentDays != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.TotalHours < 7.9 || summary.TotalHours > 8.1 {
		t.Fatalf("unexpected total hours %v", summary.TotalHours)
	}
}
