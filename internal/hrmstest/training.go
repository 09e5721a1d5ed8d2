package hrmstest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/training"
)

func (s *Server) registerTrainingRoutes(r chi.Router) {
	r.Route("/training", func(r chi.Router) {
		r.Get("/programs", s.handleListPrograms)
		r.Get("/requests", s.handleListTrainingRequests)
		r.Post("/requests", s.handleCreateTrainingRequest)
		r.Get("/skills", s.handleListSkills)
		r.Post("/skills", s.handleAddSkill)
		r.Get("/certifications", s.handleListCertifications)
	})
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]training.Program{}, s.state.programs...)
	success(w, r, out)
}

func (s *Server) handleListTrainingRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]training.Request, 0, len(s.state.trainingRequests))
	for _, req := range s.state.trainingRequests {
		if employeeID != "" && req.EmployeeID != employeeID {
			continue
		}
		out = append(out, req)
	}
	success(w, r, out)
}

func (s *Server) handleCreateTrainingRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload training.CreateRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var knownProgram bool
	for _, p := range s.state.programs {
		if p.ID == payload.ProgramID {
			knownProgram = true
			break
		}
	}
	if !knownProgram {
		fail(w, r, http.StatusNotFound, "not_found", "training program not found")
		return
	}

	now := s.timestamp()
	req := training.Request{
		ID:              uuid.NewString(),
		EmployeeID:      payload.EmployeeID,
		ProgramID:       payload.ProgramID,
		RequestType:     payload.RequestType,
		Justification:   payload.Justification,
		ExpectedOutcome: payload.ExpectedOutcome,
		Status:          "pending",
		CreatedAt:       &now,
	}
	s.state.trainingRequests = append(s.state.trainingRequests, req)
	created(w, r, req)
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]training.Skill, 0, len(s.state.skills))
	for _, sk := range s.state.skills {
		if employeeID != "" && sk.EmployeeID != employeeID {
			continue
		}
		out = append(out, sk)
	}
	success(w, r, out)
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload training.CreateSkill
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.EmployeeID == "" || payload.SkillName == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id and skill_name are required")
		return
	}

	now := s.timestamp()
	skill := training.Skill{
		ID:            uuid.NewString(),
		EmployeeID:    payload.EmployeeID,
		SkillName:     payload.SkillName,
		SkillCategory: payload.SkillCategory,
		SkillLevel:    payload.SkillLevel,
		AcquiredDate:  payload.AcquiredDate,
		ExpiryDate:    payload.ExpiryDate,
		CreatedAt:     &now,
	}
	s.mu.Lock()
	s.state.skills = append(s.state.skills, skill)
	s.mu.Unlock()
	created(w, r, skill)
}

func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]training.Certification, 0, len(s.state.certifications))
	for _, cert := range s.state.certifications {
		if employeeID != "" && cert.EmployeeID != employeeID {
			continue
		}
		out = append(out, cert)
	}
	success(w, r, out)
}
