package leave_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/leave"
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

func TestLeaveRequestLifecycle(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	admin := leave.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))

	req, err := employee.CreateRequest(ctx, leave.CreateRequest{
		EmployeeID:  hrmstest.SeedEmployeeID,
		LeaveTypeID: hrmstest.SeedAnnualLeaveTypeID,
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		Reason:      "family travel",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if req.ID == "" || req.CreatedAt == nil {
		t.Fatal("server must assign id and created_at")
	}
	if req.Status != leave.StatusPending {
		t.Fatalf("new request must be pending, got %s", req.Status)
	}
	if req.TotalDays != 3 {
		t.Fatalf("total_days must be derived server-side, got %v", req.TotalDays)
	}

	pending, err := employee.ListRequests(ctx, leave.ListFilter{EmployeeID: hrmstest.SeedEmployeeID, Status: leave.StatusPending})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != req.ID {
		t.Fatalf("unexpected pending list %+v", pending)
	}

	approved, err := admin.Approve(ctx, req.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != leave.StatusApproved || approved.ApprovedBy == nil {
		t.Fatalf("unexpected approved request %+v", approved)
	}

	if _, err := admin.Approve(ctx, req.ID); err == nil {
		t.Fatal("approving twice must fail")
	}
}

func TestCreateRequestInvalidDatesSurfacesServerMessage(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	svc := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	_, err := svc.CreateRequest(context.Background(), leave.CreateRequest{
		EmployeeID:  hrmstest.SeedEmployeeID,
		LeaveTypeID: hrmstest.SeedAnnualLeaveTypeID,
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-08",
		Reason:      "oops",
	})
	if err == nil {
		t.Fatal("expected rejection")
	}
	if got := api.ServerMessage(err, "fallback"); got != "start_date must not be after end_date" {
		t.Fatalf("server message must be surfaced verbatim, got %q", got)
	}
}

func TestApprovalRecomputesBalances(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	admin := leave.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))

	year := time.Now().Year()
	before, err := employee.ListBalances(ctx, hrmstest.SeedEmployeeID, year)
	if err != nil {
		t.Fatalf("balances before: %v", err)
	}
	var annualBefore leave.Balance
	for _, b := range before {
		if b.LeaveTypeID == hrmstest.SeedAnnualLeaveTypeID {
			annualBefore = b
		}
	}
	if annualBefore.ID == "" {
		t.Fatal("seeded annual balance missing")
	}

	start := time.Date(year, 12, 7, 0, 0, 0, 0, time.UTC)
	req, err := employee.CreateRequest(ctx, leave.CreateRequest{
		EmployeeID:  hrmstest.SeedEmployeeID,
		LeaveTypeID: hrmstest.SeedAnnualLeaveTypeID,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, 1).Format("2006-01-02"),
		Reason:      "year-end break",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if _, err := admin.Approve(ctx, req.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	after, err := employee.ListBalances(ctx, hrmstest.SeedEmployeeID, year)
	if err != nil {
		t.Fatalf("balances after: %v", err)
	}
	for _, b := range after {
		if b.LeaveTypeID != hrmstest.SeedAnnualLeaveTypeID {
			continue
		}
		if b.UsedDays != annualBefore.UsedDays+2 {
			t.Fatalf("used days not recomputed: before %v after %v", annualBefore.UsedDays, b.UsedDays)
		}
		if b.RemainingBalance != annualBefore.RemainingBalance-2 {
			t.Fatalf("remaining not recomputed: before %v after %v", annualBefore.RemainingBalance, b.RemainingBalance)
		}
		return
	}
	t.Fatal("annual balance missing after approval")
}

func TestRejectRequiresReason(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	admin := leave.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))

	req, err := employee.CreateRequest(ctx, leave.CreateRequest{
		EmployeeID:  hrmstest.SeedEmployeeID,
		LeaveTypeID: hrmstest.SeedSickLeaveTypeID,
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-01",
		Reason:      "appointment",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	if _, err := admin.Reject(ctx, req.ID, ""); err == nil {
		t.Fatal("reject without reason must fail")
	}

	rejected, err := admin.Reject(ctx, req.ID, "insufficient notice")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != leave.StatusRejected || rejected.RejectionReason == nil || *rejected.RejectionReason != "insufficient notice" {
		t.Fatalf("unexpected rejected request %+v", rejected)
	}
}

func TestApproveRequiresAdminRole(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	req, err := employee.CreateRequest(ctx, leave.CreateRequest{
		EmployeeID:  hrmstest.SeedEmployeeID,
		LeaveTypeID: hrmstest.SeedAnnualLeaveTypeID,
		StartDate:   "2026-11-02",
		EndDate:     "2026-11-03",
		Reason:      "errand",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	if _, err := employee.Approve(ctx, req.ID); err == nil {
		t.Fatal("employee role must not approve")
	}
}

func TestListTypesSeeded(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	svc := leave.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	types, err := svc.ListTypes(context.Background())
	if err != nil {
		t.Fatalf("list types: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 seeded leave types, got %d", len(types))
	}
}
