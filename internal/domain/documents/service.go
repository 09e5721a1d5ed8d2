package documents

import (
	"context"
	"io"
	"net/url"

	"hrmclient/internal/api"
	"hrmclient/internal/schema"
)

type Service struct {
	API *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{API: client}
}

func employeeQuery(employeeID string) url.Values {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employee_id", employeeID)
	}
	return q
}

func (s *Service) List(ctx context.Context, employeeID string) ([]Document, error) {
	var out []Document
	if err := s.API.Get(ctx, "/documents", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("Document", out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadInput describes the multipart form fields accompanying the file.
type UploadInput struct {
	EmployeeID   string
	DocumentType string
	DocumentName string
	FileName     string
	File         io.Reader
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (Document, error) {
	fields := map[string]string{
		"employee_id":   input.EmployeeID,
		"document_type": input.DocumentType,
		"document_name": input.DocumentName,
	}
	var out Document
	if err := s.API.Upload(ctx, "/documents/upload", fields, input.FileName, input.File, &out); err != nil {
		return Document{}, err
	}
	if err := schema.Validate("Document", out); err != nil {
		return Document{}, err
	}
	return out, nil
}

func (s *Service) Download(ctx context.Context, id string) ([]byte, error) {
	return s.API.GetBlob(ctx, "/documents/"+id+"/download", nil)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.API.Delete(ctx, "/documents/"+id)
}

func (s *Service) ListRequests(ctx context.Context, employeeID string) ([]Request, error) {
	var out []Request
	if err := s.API.Get(ctx, "/documents/requests", employeeQuery(employeeID), &out); err != nil {
		return nil, err
	}
	if err := schema.ValidateSlice("DocumentRequest", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateRequest(ctx context.Context, payload CreateRequest) (Request, error) {
	payload.ApplyDefaults()
	var out Request
	if err := s.API.Post(ctx, "/documents/requests", payload, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("DocumentRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) UpdateRequestStatus(ctx context.Context, id, status, rejectionReason string) (Request, error) {
	payload := map[string]string{"status": status}
	if rejectionReason != "" {
		payload["rejection_reason"] = rejectionReason
	}
	var out Request
	if err := s.API.Put(ctx, "/documents/requests/"+id+"/status", payload, &out); err != nil {
		return Request{}, err
	}
	if err := schema.Validate("DocumentRequest", out); err != nil {
		return Request{}, err
	}
	return out, nil
}
