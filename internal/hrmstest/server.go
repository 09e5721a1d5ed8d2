// Package hrmstest is an in-memory HRMS backend used by the client tests
// and the local development server. It speaks the same envelope protocol
// as the production API and enforces the server-side rules the client
// depends on: credential checks, leave date validation, balance
// recomputation on approval, clock transition rules, and payslip
// immutability.
package hrmstest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 8 * time.Hour

type claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Server struct {
	mu            sync.Mutex
	state         *state
	refreshTokens map[string]string // refresh token -> user email
	secret        string
	now           func() time.Time
}

func NewServer() *Server {
	s := &Server{
		refreshTokens: map[string]string{},
		secret:        uuid.NewString(),
		now:           time.Now,
	}
	s.state = seed(s.now())
	return s
}

// SetClock overrides time for tests that need a fixed "today".
func (s *Server) SetClock(now func() time.Time) { s.now = now }

func (s *Server) issueToken(userID, role string) (string, error) {
	c := claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(s.secret))
}

func (s *Server) parseToken(tokenString string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

type ctxKey int

const (
	ctxKeyClaims ctxKey = iota
	ctxKeyRequestID
)

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(ctxKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			next.ServeHTTP(w, r)
			return
		}
		c, err := s.parseToken(parts[1])
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyClaims, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerOf(r *http.Request) (*claims, bool) {
	c, ok := r.Context().Value(ctxKeyClaims).(*claims)
	return c, ok
}

// requireAuth writes the 401 envelope when the request carries no valid
// token and returns the caller's claims otherwise.
func requireAuth(w http.ResponseWriter, r *http.Request) (*claims, bool) {
	c, ok := callerOf(r)
	if !ok {
		fail(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return nil, false
	}
	return c, true
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (*claims, bool) {
	c, ok := requireAuth(w, r)
	if !ok {
		return nil, false
	}
	if c.Role != "admin" {
		fail(w, r, http.StatusForbidden, "forbidden", "admin role required")
		return nil, false
	}
	return c, true
}

// Router builds the full API surface under the same paths the production
// backend serves.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(s.withAuth)

	s.registerAuthRoutes(r)
	s.registerEmployeeRoutes(r)
	s.registerLeaveRoutes(r)
	s.registerAttendanceRoutes(r)
	s.registerPayrollRoutes(r)
	s.registerPerformanceRoutes(r)
	s.registerRecruitmentRoutes(r)
	s.registerTrainingRoutes(r)
	s.registerDocumentRoutes(r)
	s.registerComplianceRoutes(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		fail(w, r, http.StatusNotFound, "not_found", "resource not found")
	})
	return r
}

func (s *Server) timestamp() string { return s.now().UTC().Format(time.RFC3339) }

func (s *Server) today() string { return s.now().Format("2006-01-02") }

func strPtr(v string) *string { return &v }
