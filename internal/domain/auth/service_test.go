package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/hrmstest"
)

type tokenHolder struct{ token string }

func (h *tokenHolder) source() string { return h.token }

func newService(t *testing.T) (*auth.Service, *tokenHolder, func()) {
	t.Helper()
	ts := httptest.NewServer(hrmstest.NewServer().Router())
	holder := &tokenHolder{}
	client := api.New(ts.URL, 5*time.Second, holder.source)
	return auth.NewService(client), holder, ts.Close
}

func TestLoginReturnsUserAndToken(t *testing.T) {
	svc, holder, done := newService(t)
	defer done()

	resp, err := svc.Login(context.Background(), hrmstest.SeedAdminEmail, hrmstest.SeedPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == nil {
		t.Fatal("login must return access and refresh tokens")
	}
	if resp.User.Role != auth.RoleAdmin {
		t.Fatalf("expected admin role, got %s", resp.User.Role)
	}

	holder.token = resp.Token
	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Email != hrmstest.SeedAdminEmail {
		t.Fatalf("unexpected current user %+v", user)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, done := newService(t)
	defer done()

	_, err := svc.Login(context.Background(), hrmstest.SeedAdminEmail, "wrong")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if got := api.ServerMessage(err, "fallback"); got != "Invalid email or password" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRefreshIssuesNewToken(t *testing.T) {
	svc, holder, done := newService(t)
	defer done()

	resp, err := svc.Login(context.Background(), hrmstest.SeedEmployeeEmail, hrmstest.SeedPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), *resp.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.Token == "" || refreshed.User.Email != hrmstest.SeedEmployeeEmail {
		t.Fatalf("unexpected refresh response %+v", refreshed)
	}

	holder.token = refreshed.Token
	if _, err := svc.CurrentUser(context.Background()); err != nil {
		t.Fatalf("refreshed token must be valid: %v", err)
	}
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc, _, done := newService(t)
	defer done()

	if _, err := svc.Refresh(context.Background(), "bogus"); err == nil {
		t.Fatal("unknown refresh token must be rejected")
	}
}

func TestChangePassword(t *testing.T) {
	svc, holder, done := newService(t)
	defer done()
	ctx := context.Background()

	resp, err := svc.Login(ctx, hrmstest.SeedEmployeeEmail, hrmstest.SeedPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	holder.token = resp.Token

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "next-password",
		ConfirmPassword: "next-password",
	})
	if err == nil {
		t.Fatal("wrong current password must be rejected")
	}

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: hrmstest.SeedPassword,
		NewPassword:     "next-password",
		ConfirmPassword: "mismatch",
	})
	if err == nil {
		t.Fatal("mismatched confirmation must be rejected")
	}

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: hrmstest.SeedPassword,
		NewPassword:     "next-password",
		ConfirmPassword: "next-password",
	})
	if err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Login(ctx, hrmstest.SeedEmployeeEmail, hrmstest.SeedPassword); err == nil {
		t.Fatal("old password must no longer work")
	}
	if _, err := svc.Login(ctx, hrmstest.SeedEmployeeEmail, "next-password"); err != nil {
		t.Fatalf("new password must work: %v", err)
	}
}

func TestCurrentUserWithoutTokenUnauthorized(t *testing.T) {
	svc, _, done := newService(t)
	defer done()

	_, err := svc.CurrentUser(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
