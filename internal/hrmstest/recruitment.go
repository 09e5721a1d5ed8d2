package hrmstest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/recruitment"
)

func (s *Server) registerRecruitmentRoutes(r chi.Router) {
	r.Route("/recruitment", func(r chi.Router) {
		r.Get("/requisitions", s.handleListRequisitions)
		r.Post("/requisitions", s.handleCreateRequisition)
		r.Put("/requisitions/{requisitionID}", s.handleUpdateRequisition)
		r.Post("/requisitions/{requisitionID}/approve", s.handleApproveRequisition)
		r.Get("/vacancies", s.handleListVacancies)
		r.Post("/vacancies", s.handleCreateVacancy)
		r.Get("/applications", s.handleListApplications)
		r.Put("/applications/{applicationID}/status", s.handleUpdateApplicationStatus)
		r.Get("/interviews", s.handleListInterviews)
		r.Post("/interviews", s.handleScheduleInterview)
		r.Put("/interviews/{interviewID}/feedback", s.handleInterviewFeedback)
	})
}

func (s *Server) handleListRequisitions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]recruitment.JobRequisition{}, s.state.requisitions...)
	success(w, r, out)
}

func (s *Server) handleCreateRequisition(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload recruitment.CreateRequisition
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.JobTitle == "" || payload.NumberOfVacancies <= 0 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "job_title and a positive number_of_vacancies are required")
		return
	}

	now := s.timestamp()
	req := recruitment.JobRequisition{
		ID:                      uuid.NewString(),
		JobTitle:                payload.JobTitle,
		DepartmentID:            payload.DepartmentID,
		ReportingManager:        payload.ReportingManager,
		EmploymentType:          payload.EmploymentType,
		NumberOfVacancies:       payload.NumberOfVacancies,
		JobDescription:          payload.JobDescription,
		RequiredQualifications:  payload.RequiredQualifications,
		PreferredQualifications: payload.PreferredQualifications,
		ExperienceRequired:      payload.ExperienceRequired,
		SalaryRangeMin:          payload.SalaryRangeMin,
		SalaryRangeMax:          payload.SalaryRangeMax,
		Location:                payload.Location,
		Urgency:                 payload.Urgency,
		RequestedBy:             payload.RequestedBy,
		Status:                  recruitment.RequisitionStatusPending,
		CreatedAt:               &now,
	}
	s.mu.Lock()
	s.state.requisitions = append(s.state.requisitions, req)
	s.mu.Unlock()
	created(w, r, req)
}

func (s *Server) handleUpdateRequisition(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "requisitionID")
	var payload recruitment.UpdateRequisition
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.requisitions {
		if req.ID != id {
			continue
		}
		if payload.JobTitle != nil {
			req.JobTitle = *payload.JobTitle
		}
		if payload.NumberOfVacancies != nil {
			req.NumberOfVacancies = *payload.NumberOfVacancies
		}
		if payload.JobDescription != nil {
			req.JobDescription = *payload.JobDescription
		}
		if payload.SalaryRangeMin != nil {
			req.SalaryRangeMin = payload.SalaryRangeMin
		}
		if payload.SalaryRangeMax != nil {
			req.SalaryRangeMax = payload.SalaryRangeMax
		}
		if payload.Location != nil {
			req.Location = *payload.Location
		}
		if payload.Urgency != nil {
			req.Urgency = *payload.Urgency
		}
		if payload.Status != nil {
			req.Status = *payload.Status
		}
		s.state.requisitions[i] = req
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "requisition not found")
}

func (s *Server) handleApproveRequisition(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "requisitionID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, req := range s.state.requisitions {
		if req.ID != id {
			continue
		}
		if req.Status != recruitment.RequisitionStatusPending {
			fail(w, r, http.StatusConflict, "invalid_transition", "only pending requisitions can be approved")
			return
		}
		req.Status = recruitment.RequisitionStatusApproved
		req.ApprovedBy = &c.UserID
		s.state.requisitions[i] = req
		success(w, r, req)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "requisition not found")
}

func (s *Server) handleListVacancies(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recruitment.Vacancy, 0, len(s.state.vacancies))
	for _, v := range s.state.vacancies {
		count := 0
		for _, a := range s.state.applications {
			if a.VacancyID == v.ID {
				count++
			}
		}
		v.ApplicationsCount = &count
		out = append(out, v)
	}
	success(w, r, out)
}

func (s *Server) handleCreateVacancy(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	var payload recruitment.CreateVacancy
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var approved bool
	for _, req := range s.state.requisitions {
		if req.ID == payload.RequisitionID {
			approved = req.Status == recruitment.RequisitionStatusApproved
			break
		}
	}
	if !approved {
		fail(w, r, http.StatusConflict, "requisition_not_approved", "requisition must be approved before posting a vacancy")
		return
	}

	vacancy := recruitment.Vacancy{
		ID:             uuid.NewString(),
		RequisitionID:  payload.RequisitionID,
		JobTitle:       payload.JobTitle,
		Department:     payload.Department,
		Location:       payload.Location,
		EmploymentType: payload.EmploymentType,
		Description:    payload.Description,
		Requirements:   payload.Requirements,
		PostedDate:     payload.PostedDate,
		ClosingDate:    payload.ClosingDate,
		Status:         "active",
	}
	s.state.vacancies = append(s.state.vacancies, vacancy)
	created(w, r, vacancy)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	vacancyID := r.URL.Query().Get("vacancy_id")
	status := r.URL.Query().Get("status")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recruitment.Application, 0, len(s.state.applications))
	for _, a := range s.state.applications {
		if vacancyID != "" && a.VacancyID != vacancyID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	success(w, r, out)
}

var applicationStatuses = map[string]bool{
	recruitment.ApplicationStatusApplied:    true,
	recruitment.ApplicationStatusScreening:  true,
	recruitment.ApplicationStatusInterview:  true,
	recruitment.ApplicationStatusAssessment: true,
	recruitment.ApplicationStatusOffer:      true,
	recruitment.ApplicationStatusHired:      true,
	recruitment.ApplicationStatusRejected:   true,
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "applicationID")
	var payload struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if !applicationStatuses[payload.Status] {
		fail(w, r, http.StatusBadRequest, "invalid_status", "unknown application status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.state.applications {
		if a.ID == id {
			a.Status = payload.Status
			s.state.applications[i] = a
			success(w, r, a)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "application not found")
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]recruitment.Interview{}, s.state.interviews...)
	success(w, r, out)
}

func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	var payload recruitment.ScheduleInterview
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.ApplicationID == "" || len(payload.InterviewerIDs) == 0 {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "application_id and at least one interviewer are required")
		return
	}

	now := s.timestamp()
	interview := recruitment.Interview{
		ID:              uuid.NewString(),
		ApplicationID:   payload.ApplicationID,
		InterviewType:   payload.InterviewType,
		ScheduledDate:   payload.ScheduledDate,
		ScheduledTime:   payload.ScheduledTime,
		DurationMinutes: payload.DurationMinutes,
		InterviewerIDs:  payload.InterviewerIDs,
		Location:        payload.Location,
		MeetingLink:     payload.MeetingLink,
		Status:          recruitment.InterviewStatusScheduled,
		CreatedAt:       &now,
	}
	s.mu.Lock()
	s.state.interviews = append(s.state.interviews, interview)
	s.mu.Unlock()
	created(w, r, interview)
}

func (s *Server) handleInterviewFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	id := chi.URLParam(r, "interviewID")
	var payload recruitment.InterviewFeedback
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		fail(w, r, http.StatusBadRequest, "invalid_rating", "rating must be between 1 and 5")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, iv := range s.state.interviews {
		if iv.ID != id {
			continue
		}
		iv.Feedback = &payload.Feedback
		iv.Rating = &payload.Rating
		iv.Recommendation = &payload.Recommendation
		iv.Status = recruitment.InterviewStatusCompleted
		s.state.interviews[i] = iv
		success(w, r, iv)
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "interview not found")
}
