package hrmstest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/performance"
)

func (s *Server) registerPerformanceRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/goals", s.handleListGoals)
		r.Post("/goals", s.handleCreateGoal)
		r.Put("/goals/{goalID}", s.handleUpdateGoal)
		r.Get("/feedback", s.handleListFeedback)
		r.Post("/feedback", s.handleCreateFeedback)
		r.Get("/appraisals", s.handleListAppraisals)
	})
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]performance.Goal, 0, len(s.state.goals))
	for _, g := range s.state.goals {
		if employeeID != "" && g.EmployeeID != employeeID {
			continue
		}
		out = append(out, g)
	}
	success(w, r, out)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload performance.CreateGoal
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.EmployeeID == "" || payload.Title == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "employee_id and title are required")
		return
	}

	now := s.timestamp()
	goal := performance.Goal{
		ID:          uuid.NewString(),
		EmployeeID:  payload.EmployeeID,
		Title:       payload.Title,
		Description: payload.Description,
		KPIMetric:   payload.KPIMetric,
		TargetValue: payload.TargetValue,
		Weight:      payload.Weight,
		PeriodStart: payload.PeriodStart,
		PeriodEnd:   payload.PeriodEnd,
		Status:      performance.GoalStatusActive,
		CreatedBy:   payload.CreatedBy,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}
	s.mu.Lock()
	s.state.goals = append(s.state.goals, goal)
	s.mu.Unlock()
	created(w, r, goal)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "goalID")
	var payload performance.UpdateGoal
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.state.goals {
		if g.ID != id {
			continue
		}
		if payload.Title != nil {
			g.Title = *payload.Title
		}
		if payload.Description != nil {
			g.Description = *payload.Description
		}
		if payload.TargetValue != nil {
			g.TargetValue = *payload.TargetValue
		}
		if payload.AchievedValue != nil {
			g.AchievedValue = payload.AchievedValue
		}
		if payload.Weight != nil {
			g.Weight = *payload.Weight
		}
		if payload.Status != nil {
			g.Status = *payload.Status
		}
		now := s.timestamp()
		g.UpdatedAt = &now
		s.state.goals[i] = g
		success(w, r, g)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "goal not found")
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]performance.Feedback, 0, len(s.state.feedback))
	for _, f := range s.state.feedback {
		if employeeID != "" && f.EmployeeID != employeeID {
			continue
		}
		out = append(out, f)
	}
	success(w, r, out)
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload performance.CreateFeedback
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		fail(w, r, http.StatusBadRequest, "invalid_rating", "rating must be between 1 and 5")
		return
	}

	now := s.timestamp()
	feedback := performance.Feedback{
		ID:                     uuid.NewString(),
		EmployeeID:             payload.EmployeeID,
		ReviewerID:             payload.ReviewerID,
		Role:                   payload.Role,
		FeedbackType:           payload.FeedbackType,
		Rating:                 payload.Rating,
		FeedbackText:           payload.FeedbackText,
		Strengths:              payload.Strengths,
		AreasForImprovement:    payload.AreasForImprovement,
		DevelopmentSuggestions: payload.DevelopmentSuggestions,
		Period:                 payload.Period,
		IsAnonymous:            payload.IsAnonymous,
		CreatedAt:              &now,
	}
	s.mu.Lock()
	s.state.feedback = append(s.state.feedback, feedback)
	s.mu.Unlock()
	created(w, r, feedback)
}

func (s *Server) handleListAppraisals(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	employeeID := r.URL.Query().Get("employee_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]performance.Appraisal, 0, len(s.state.appraisals))
	for _, a := range s.state.appraisals {
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		out = append(out, a)
	}
	success(w, r, out)
}
