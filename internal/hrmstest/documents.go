package hrmstest

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/documents"
)

const maxUploadBytes = 8 * 1024 * 1024

func (s *Server) registerDocumentRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.handleListDocuments)
		r.Post("/upload", s.handleUploadDocument)
		r.Get("/requests", s.handleListDocumentRequests)
		r.Post("/requests", s.handleCreateDocumentRequest)
		r.Put("/requests/{requestID}/status", s.handleUpdateDocumentRequestStatus)
		r.Get("/{documentID}/download", s.handleDownloadDocument)
		r.Delete("/{documentID}", s.handleDeleteDocument)
	})
}

func filterDocuments(docs []documents.Document, employeeID string) []documents.Document {
	out := make([]documents.Document, 0, len(docs))
	for _, d := range docs {
		if employeeID != "" && d.EmployeeID != employeeID {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	success(w, r, filterDocuments(s.state.documents, employeeID))
}

func mimeTypeFor(fileName string) string {
	switch filepath.Ext(fileName) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAuth(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "file part is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "failed to read file")
		return
	}
	employeeID := r.FormValue("employee_id")
	if employeeID == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id is required")
		return
	}
	name := r.FormValue("document_name")
	if name == "" {
		name = header.Filename
	}

	doc := documents.Document{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		DocumentType: r.FormValue("document_type"),
		DocumentName: name,
		FilePath:     "/files/" + header.Filename,
		FileSize:     int64(len(content)),
		MimeType:     mimeTypeFor(header.Filename),
		UploadedBy:   c.UserID,
		UploadDate:   s.timestamp(),
		Status:       "active",
		AccessLevel:  "internal",
		Version:      1,
	}
	s.mu.Lock()
	s.state.documents = append(s.state.documents, doc)
	s.state.docBlobs[doc.ID] = content
	s.mu.Unlock()
	created(w, r, doc)
}

func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "documentID")

	s.mu.Lock()
	content, ok := s.state.docBlobs[id]
	var mime string
	for _, d := range s.state.documents {
		if d.ID == id {
			mime = d.MimeType
			break
		}
	}
	s.mu.Unlock()
	if !ok {
		fail(w, r, http.StatusNotFound, "not_found", "document not found")
		return
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "documentID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.state.documents {
		if d.ID == id {
			s.state.documents = append(s.state.documents[:i], s.state.documents[i+1:]...)
			delete(s.state.docBlobs, id)
			success(w, r, map[string]string{"id": id})
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "document not found")
}

func (s *Server) handleListDocumentRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]documents.Request, 0, len(s.state.docRequests))
	for _, req := range s.state.docRequests {
		if employeeID != "" && req.EmployeeID != employeeID {
			continue
		}
		out = append(out, req)
	}
	success(w, r, out)
}

func (s *Server) handleCreateDocumentRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload documents.CreateRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	payload.ApplyDefaults()
	if payload.EmployeeID == "" || payload.DocumentType == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id and document_type are required")
		return
	}

	req := documents.Request{
		ID:           uuid.NewString(),
		EmployeeID:   payload.EmployeeID,
		DocumentType: payload.DocumentType,
		Purpose:      payload.Purpose,
		Urgency:      payload.Urgency,
		Status:       documents.RequestStatusPending,
		RequestedAt:  s.timestamp(),
	}
	s.mu.Lock()
	s.state.docRequests = append(s.state.docRequests, req)
	s.mu.Unlock()
	created(w, r, req)
}

var documentRequestStatuses = map[string]bool{
	documents.RequestStatusPending:    true,
	documents.RequestStatusInProgress: true,
	documents.RequestStatusCompleted:  true,
	documents.RequestStatusRejected:   true,
}

func (s *Server) handleUpdateDocumentRequestStatus(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "requestID")
	var payload struct {
		Status          string `json:"status"`
		RejectionReason string `json:"rejection_reason"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if !documentRequestStatuses[payload.Status] {
		fail(w, r, http.StatusBadRequest, "invalid_status", "unknown request status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.docRequests {
		if req.ID != id {
			continue
		}
		req.Status = payload.Status
		req.ProcessedBy = &c.UserID
		if payload.Status == documents.RequestStatusCompleted {
			now := s.timestamp()
			req.CompletedAt = &now
		}
		if payload.RejectionReason != "" {
			req.RejectionReason = &payload.RejectionReason
		}
		s.state.docRequests[i] = req
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "document request not found")
}
