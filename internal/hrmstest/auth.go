package hrmstest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrmclient/internal/domain/auth"
)

func (s *Server) registerAuthRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Post("/refresh", s.handleRefresh)
		r.Get("/me", s.handleMe)
		r.Post("/change-password", s.handleChangePassword)
		r.Post("/forgot-password", s.handleForgotPassword)
		r.Post("/reset-password", s.handleResetPassword)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	record, ok := s.state.users[payload.Email]
	s.mu.Unlock()
	if !ok || checkPassword(record.hash, payload.Password) != nil {
		fail(w, r, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := s.issueToken(record.user.ID, record.user.Role)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "token_failed", "failed to issue token")
		return
	}
	refresh := uuid.NewString()
	s.mu.Lock()
	s.refreshTokens[refresh] = payload.Email
	s.mu.Unlock()

	success(w, r, auth.AuthResponse{User: record.user, Token: token, RefreshToken: &refresh})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}
	success(w, r, map[string]string{"message": "logged out"})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RefreshToken string `json:"refresh_token"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	email, ok := s.refreshTokens[payload.RefreshToken]
	var record *userRecord
	if ok {
		record = s.state.users[email]
	}
	s.mu.Unlock()
	if record == nil {
		fail(w, r, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is not valid")
		return
	}

	token, err := s.issueToken(record.user.ID, record.user.Role)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "token_failed", "failed to issue token")
		return
	}
	success(w, r, auth.AuthResponse{User: record.user, Token: token, RefreshToken: &payload.RefreshToken})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAuth(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.state.users {
		if record.user.ID == c.UserID {
			success(w, r, record.user)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "not_found", "user not found")
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	c, ok := requireAuth(w, r)
	if !ok {
		return
	}
	var payload auth.ChangePasswordRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.NewPassword != payload.ConfirmPassword {
		fail(w, r, http.StatusBadRequest, "password_mismatch", "new password and confirmation do not match")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.state.users {
		if record.user.ID != c.UserID {
			continue
		}
		if checkPassword(record.hash, payload.CurrentPassword) != nil {
			fail(w, r, http.StatusBadRequest, "invalid_password", "current password is incorrect")
			return
		}
		record.hash = hashPassword(payload.NewPassword)
		success(w, r, map[string]string{"message": "password changed"})
		return
	}
	fail(w, r, http.StatusNotFound, "not_found", "user not found")
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	// always accept to avoid leaking which accounts exist
	success(w, r, map[string]string{"message": "reset email sent if the account exists"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Token == "" || payload.NewPassword == "" {
		fail(w, r, http.StatusBadRequest, "invalid_payload", "token and new_password are required")
		return
	}
	success(w, r, map[string]string{"message": "password reset"})
}
