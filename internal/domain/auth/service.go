package auth

import (
	"context"

	"hrmclient/internal/api"
	"hrmclient/internal/schema"
)

type Service struct {
	API *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{API: client}
}

func (s *Service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	payload := map[string]string{"email": email, "password": password}
	if err := s.API.Post(ctx, "/auth/login", payload, &resp); err != nil {
		return AuthResponse{}, err
	}
	if err := schema.Validate("AuthResponse", resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.API.Post(ctx, "/auth/logout", nil, nil)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	var resp AuthResponse
	payload := map[string]string{"refresh_token": refreshToken}
	if err := s.API.Post(ctx, "/auth/refresh", payload, &resp); err != nil {
		return AuthResponse{}, err
	}
	if err := schema.Validate("AuthResponse", resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

func (s *Service) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := s.API.Get(ctx, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	if err := schema.Validate("User", user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.API.Post(ctx, "/auth/change-password", req, nil)
}

func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	return s.API.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (s *Service) ResetPassword(ctx context.Context, token, password, confirm string) error {
	payload := map[string]string{
		"token":            token,
		"password":         password,
		"confirm_password": confirm,
	}
	return s.API.Post(ctx, "/auth/reset-password", payload, nil)
}
