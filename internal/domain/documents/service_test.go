package documents_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/documents"
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

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	svc := documents.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	content := "dummy scan bytes"
	doc, err := svc.Upload(ctx, documents.UploadInput{
		EmployeeID:   hrmstest.SeedEmployeeID,
		DocumentType: "national_id",
		DocumentName: "National ID",
		FileName:     "national-id.pdf",
		File:         strings.NewReader(content),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.ID == "" || doc.Version != 1 || doc.Status != "active" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.MimeType != "application/pdf" {
		t.Fatalf("mime type must come from the file name, got %s", doc.MimeType)
	}
	if doc.FileSize != int64(len(content)) {
		t.Fatalf("file size mismatch: %d", doc.FileSize)
	}

	blob, err := svc.Download(ctx, doc.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if !bytes.Equal(blob, []byte(content)) {
		t.Fatalf("downloaded bytes differ: %q", blob)
	}

	list, err := svc.List(ctx, hrmstest.SeedEmployeeID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != doc.ID {
		t.Fatalf("uploaded document must be listed, got %+v", list)
	}
}

func TestDeleteDocumentRemovesBlob(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	svc := documents.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	doc, err := svc.Upload(ctx, documents.UploadInput{
		EmployeeID:   hrmstest.SeedEmployeeID,
		DocumentType: "contract",
		DocumentName: "Contract",
		FileName:     "contract.pdf",
		File:         strings.NewReader("contract body"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Download(ctx, doc.ID); err == nil {
		t.Fatal("deleted document must not download")
	}
}

func TestCreateRequestDefaultsUrgency(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()

	svc := documents.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	req, err := svc.CreateRequest(context.Background(), documents.CreateRequest{
		EmployeeID:   hrmstest.SeedEmployeeID,
		DocumentType: "salary_certificate",
		Purpose:      "bank loan application",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if req.Urgency != documents.UrgencyMedium {
		t.Fatalf("urgency must default to medium, got %s", req.Urgency)
	}
	if req.Status != documents.RequestStatusPending || req.RequestedAt == "" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestUpdateRequestStatusLifecycle(t *testing.T) {
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	defer ts.Close()
	ctx := context.Background()

	employee := documents.NewService(newClient(t, ts.URL, hrmstest.SeedEmployeeEmail))
	admin := documents.NewService(newClient(t, ts.URL, hrmstest.SeedAdminEmail))

	req, err := employee.CreateRequest(ctx, documents.CreateRequest{
		EmployeeID:   hrmstest.SeedEmployeeID,
		DocumentType: "employment_letter",
		Purpose:      "embassy visa",
		Urgency:      documents.UrgencyHigh,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	// status changes are an admin operation
	if _, err := employee.UpdateRequestStatus(ctx, req.ID, documents.RequestStatusCompleted, ""); err == nil {
		t.Fatal("employee role must not change request status")
	}

	updated, err := admin.UpdateRequestStatus(ctx, req.ID, documents.RequestStatusCompleted, "")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != documents.RequestStatusCompleted || updated.CompletedAt == nil || updated.ProcessedBy == nil {
		t.Fatalf("completion must stamp processing fields, got %+v", updated)
	}

	if _, err := admin.UpdateRequestStatus(ctx, req.ID, "bogus", ""); err == nil {
		t.Fatal("unknown status must be rejected")
	}
}
