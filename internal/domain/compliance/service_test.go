package compliance_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/compliance"
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

func TestCheckLifecycle(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	check, err := admin.CreateCheck(ctx, compliance.CreateCheck{
		EmployeeID:  hrmstest.SeedEmployeeID,
		CheckType:   "work_permit",
		Description: "Work permit renewal",
		DueDate:     "2026-10-15",
	})
	if err != nil {
		t.Fatalf("create check: %v", err)
	}
	if check.ID == "" || check.Status != "pending" || check.CreatedAt == nil {
		t.Fatalf("unexpected check %+v", check)
	}

	status := "completed"
	completed := "2026-09-01"
	updated, err := admin.UpdateCheck(ctx, check.ID, compliance.UpdateCheck{
		Status:        &status,
		CompletedDate: &completed,
	})
	if err != nil {
		t.Fatalf("update check: %v", err)
	}
	if updated.Status != "completed" || updated.CompletedDate == nil {
		t.Fatalf("unexpected updated check %+v", updated)
	}

	list, err := admin.ListChecks(ctx, hrmstest.SeedEmployeeID)
	if err != nil {
		t.Fatalf("list checks: %v", err)
	}
	// seeded iqama check plus the one created above
	if len(list) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(list))
	}
}

func TestCheckWritesRequireAdmin(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	svc := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	_, err := svc.CreateCheck(context.Background(), compliance.CreateCheck{
		EmployeeID:  hrmstest.SeedEmployeeID,
		CheckType:   "work_permit",
		Description: "Work permit renewal",
		DueDate:     "2026-10-15",
	})
	if err == nil {
		t.Fatal("employee role must not create checks")
	}
}

func TestAuditTrailRecordsAdminWrites(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	if _, err := admin.CreateCheck(ctx, compliance.CreateCheck{
		EmployeeID:  hrmstest.SeedEmployeeID,
		CheckType:   "medical_insurance",
		Description: "Insurance renewal",
		DueDate:     "2026-11-01",
	}); err != nil {
		t.Fatalf("create check: %v", err)
	}

	logs, err := admin.ListAuditLogs(ctx, compliance.AuditFilter{ResourceType: "compliance_check"})
	if err != nil {
		t.Fatalf("audit logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 audit row, got %d", len(logs))
	}
	row := logs[0]
	if row.Action != "compliance.check.create" || row.UserID != hrmstest.SeedAdminUserID {
		t.Fatalf("unexpected audit row %+v", row)
	}
	if len(row.NewValues) == 0 {
		t.Fatal("create must record the new values")
	}
}

func TestAuditLogsRequireAdmin(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	svc := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	if _, err := svc.ListAuditLogs(context.Background(), compliance.AuditFilter{}); err == nil {
		t.Fatal("employee role must not read the audit trail")
	}
}

func TestGenerateAndDownloadReport(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	report, err := admin.GenerateReport(ctx, compliance.GenerateReport{
		ReportType:  "saudization",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-06-30",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if report.Status != "completed" || report.GeneratedBy != hrmstest.SeedAdminUserID {
		t.Fatalf("unexpected report %+v", report)
	}

	blob, err := admin.DownloadReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Fatal("report download must be a PDF")
	}

	list, err := admin.ListReports(ctx)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(list) != 1 || list[0].ID != report.ID {
		t.Fatalf("generated report must be listed, got %+v", list)
	}
}

func TestGenerateReportRequiresPeriod(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	admin := compliance.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	_, err := admin.GenerateReport(context.Background(), compliance.GenerateReport{ReportType: "saudization"})
	if err == nil {
		t.Fatal("missing period must be rejected")
	}
	if got := api.ServerMessage(err, "fallback"); got != "report_type, period_start and period_end are required" {
		t.Fatalf("unexpected message %q", got)
	}
}
