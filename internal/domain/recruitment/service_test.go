package recruitment_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/recruitment"
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

func newRequisition() recruitment.CreateRequisition {
	return recruitment.CreateRequisition{
		JobTitle:               "Platform Engineer",
		DepartmentID:           hrmstest.SeedDepartmentID,
		ReportingManager:       hrmstest.SeedAdminID,
		EmploymentType:         "Full-time",
		NumberOfVacancies:      2,
		JobDescription:         "Build and operate internal platform services.",
		RequiredQualifications: "BSc in Computer Science or equivalent",
		ExperienceRequired:     "3+ years",
		Location:               "Riyadh",
		Urgency:                "High",
		RequestedBy:            hrmstest.SeedAdminUserID,
	}
}

func newVacancy(requisitionID string) recruitment.CreateVacancy {
	return recruitment.CreateVacancy{
		RequisitionID:  requisitionID,
		JobTitle:       "Platform Engineer",
		Department:     "Engineering",
		Location:       "Riyadh",
		EmploymentType: "Full-time",
		Description:    "Build and operate internal platform services.",
		Requirements:   "BSc in Computer Science or equivalent",
		PostedDate:     "2026-09-01",
		ClosingDate:    "2026-09-30",
	}
}

func TestVacancyRequiresApprovedRequisition(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	req, err := admin.CreateRequisition(ctx, newRequisition())
	if err != nil {
		t.Fatalf("create requisition: %v", err)
	}
	if req.Status != recruitment.RequisitionStatusPending {
		t.Fatalf("new requisition must be pending, got %s", req.Status)
	}

	_, err = admin.CreateVacancy(ctx, newVacancy(req.ID))
	if err == nil {
		t.Fatal("vacancy must not post from an unapproved requisition")
	}
	if got := api.ServerMessage(err, "fallback"); got != "requisition must be approved before posting a vacancy" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := admin.ApproveRequisition(ctx, req.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	vacancy, err := admin.CreateVacancy(ctx, newVacancy(req.ID))
	if err != nil {
		t.Fatalf("create vacancy after approval: %v", err)
	}
	if vacancy.Status != "active" || vacancy.RequisitionID != req.ID {
		t.Fatalf("unexpected vacancy %+v", vacancy)
	}

	listed, err := admin.ListVacancies(ctx)
	if err != nil {
		t.Fatalf("list vacancies: %v", err)
	}
	if len(listed) != 1 || listed[0].ApplicationsCount == nil || *listed[0].ApplicationsCount != 0 {
		t.Fatalf("listing must carry an applications count, got %+v", listed)
	}
}

func TestApproveRequisitionRequiresAdmin(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	req, err := employee.CreateRequisition(ctx, newRequisition())
	if err != nil {
		t.Fatalf("create requisition: %v", err)
	}
	if err := employee.ApproveRequisition(ctx, req.ID); err == nil {
		t.Fatal("employee role must not approve requisitions")
	}
}

func TestApproveRequisitionOnlyOnce(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	req, err := admin.CreateRequisition(ctx, newRequisition())
	if err != nil {
		t.Fatalf("create requisition: %v", err)
	}
	if err := admin.ApproveRequisition(ctx, req.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := admin.ApproveRequisition(ctx, req.ID); err == nil {
		t.Fatal("second approval must be rejected")
	}
}

func TestPartialRequisitionUpdate(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	req, err := admin.CreateRequisition(ctx, newRequisition())
	if err != nil {
		t.Fatalf("create requisition: %v", err)
	}

	vacancies := 5
	updated, err := admin.UpdateRequisition(ctx, req.ID, recruitment.UpdateRequisition{NumberOfVacancies: &vacancies})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.NumberOfVacancies != 5 {
		t.Fatalf("vacancy count not updated: %+v", updated)
	}
	if updated.JobTitle != req.JobTitle || updated.Location != req.Location {
		t.Fatalf("untouched fields must survive the update: %+v", updated)
	}
}

func TestInterviewFeedbackCompletesInterview(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	admin := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	interview, err := admin.ScheduleInterview(ctx, recruitment.ScheduleInterview{
		ApplicationID:   "app-0001",
		InterviewType:   "technical",
		ScheduledDate:   "2026-09-10",
		ScheduledTime:   "14:00",
		DurationMinutes: 60,
		InterviewerIDs:  []string{hrmstest.SeedAdminID},
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if interview.Status != recruitment.InterviewStatusScheduled {
		t.Fatalf("new interview must be scheduled, got %s", interview.Status)
	}

	_, err = admin.SubmitInterviewFeedback(ctx, interview.ID, recruitment.InterviewFeedback{
		Feedback:       "strong systems knowledge",
		Rating:         6,
		Recommendation: "hire",
	})
	if err == nil {
		t.Fatal("rating outside 1-5 must be rejected")
	}

	done, err := admin.SubmitInterviewFeedback(ctx, interview.ID, recruitment.InterviewFeedback{
		Feedback:       "strong systems knowledge",
		Rating:         4,
		Recommendation: "hire",
	})
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if done.Status != recruitment.InterviewStatusCompleted || done.Rating == nil || *done.Rating != 4 {
		t.Fatalf("feedback must complete the interview, got %+v", done)
	}
}

func TestScheduleInterviewRequiresInterviewers(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	admin := recruitment.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))
	_, err := admin.ScheduleInterview(context.Background(), recruitment.ScheduleInterview{
		ApplicationID:   "app-0001",
		InterviewType:   "phone",
		ScheduledDate:   "2026-09-10",
		ScheduledTime:   "10:00",
		DurationMinutes: 30,
	})
	if err == nil {
		t.Fatal("interview without interviewers must be rejected")
	}
}
