package hrmstest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/documents"
	"hrmclient/internal/domain/employees"
)

func (s *Server) registerEmployeeRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", s.handleListEmployees)
		r.Post("/", s.handleCreateEmployee)
		r.Get("/{employeeID}", s.handleGetEmployee)
		r.Put("/{employeeID}", s.handleUpdateEmployee)
		r.Delete("/{employeeID}", s.handleDeleteEmployee)
		r.Get("/{employeeID}/documents", s.handleEmployeeDocuments)
		r.Get("/{employeeID}/salary-components", s.handleSalaryComponents)
	})
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	departmentID := r.URL.Query().Get("department_id")
	status := r.URL.Query().Get("employment_status")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]employees.Employee, 0, len(s.state.employees))
	for _, e := range s.state.employees {
		if departmentID != "" && e.DepartmentID != departmentID {
			continue
		}
		if status != "" && e.EmploymentStatus != status {
			continue
		}
		out = append(out, e)
	}
	success(w, r, out)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "employeeID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.state.employees {
		if e.ID == id {
			success(w, r, e)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "employee not found")
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	var payload employees.CreateEmployee
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Email == "" || payload.EmployeeNumber == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "email and employee_number are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.state.employees {
		if e.EmployeeNumber == payload.EmployeeNumber {
			fail(w, r, http.StatusConflict, "duplicate_employee", "employee number already exists")
			return
		}
		if e.Email == payload.Email {
			fail(w, r, http.StatusConflict, "duplicate_employee", "email already exists")
			return
		}
	}

	now := s.timestamp()
	emp := employees.Employee{
		ID:                    uuid.NewString(),
		EmployeeNumber:        payload.EmployeeNumber,
		FirstNameEn:           payload.FirstNameEn,
		LastNameEn:            payload.LastNameEn,
		FirstNameAr:           payload.FirstNameAr,
		LastNameAr:            payload.LastNameAr,
		Email:                 payload.Email,
		MobileNumber:          payload.MobileNumber,
		NationalID:            payload.NationalID,
		PassportNumber:        payload.PassportNumber,
		DateOfBirth:           payload.DateOfBirth,
		Gender:                payload.Gender,
		Nationality:           payload.Nationality,
		MaritalStatus:         payload.MaritalStatus,
		JobTitle:              payload.JobTitle,
		DepartmentID:          payload.DepartmentID,
		ManagerID:             payload.ManagerID,
		EmploymentStatus:      payload.EmploymentStatus,
		EmploymentType:        payload.EmploymentType,
		JoinDate:              payload.JoinDate,
		ProbationEndDate:      payload.ProbationEndDate,
		ContractEndDate:       payload.ContractEndDate,
		BasicSalary:           payload.BasicSalary,
		HousingAllowance:      payload.HousingAllowance,
		TransportAllowance:    payload.TransportAllowance,
		OtherAllowances:       payload.OtherAllowances,
		BankName:              payload.BankName,
		BankAccountNumber:     payload.BankAccountNumber,
		IBAN:                  payload.IBAN,
		EmergencyContactName:  payload.EmergencyContactName,
		EmergencyContactPhone: payload.EmergencyContactPhone,
		Address:               payload.Address,
		City:                  payload.City,
		Country:               payload.Country,
		PostalCode:            payload.PostalCode,
		CreatedAt:             &now,
		UpdatedAt:             &now,
	}
	s.state.employees = append(s.state.employees, emp)
	created(w, r, emp)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "employeeID")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.state.employees {
		if e.ID != id {
			continue
		}
		// merge the partial payload over the stored record; absent fields
		// stay untouched
		merged := e
		if err := json.Unmarshal(body, &merged); err != nil {
			fail(w, r, http.StatusBadRequest, "invalid_payload", "invalid request payload")
			return
		}
		merged.ID = e.ID
		merged.CreatedAt = e.CreatedAt
		now := s.timestamp()
		merged.UpdatedAt = &now
		s.state.employees[i] = merged
		success(w, r, merged)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "employee not found")
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "employeeID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.state.employees {
		if e.ID == id {
			s.state.employees = append(s.state.employees[:i], s.state.employees[i+1:]...)
			success(w, r, map[string]string{"id": id})
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "employee not found")
}

func (s *Server) handleEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "employeeID")

	s.mu.Lock()
	defer s.mu.Unlock()
	docs := append([]documents.Document{}, s.state.empDocuments[id]...)
	docs = append(docs, filterDocuments(s.state.documents, id)...)
	success(w, r, docs)
}
