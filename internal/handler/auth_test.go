package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"latitude/internal/domain"
	"latitude/internal/domain/models"
	"latitude/internal/domain/services"
)

type stubAuthService struct {
	registerResult *services.AuthResponse
	loginResult    *services.AuthResponse
	err            error
}

func (s *stubAuthService) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.registerResult, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.loginResult, nil
}

func newAuthMux(svc services.AuthService) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	return mux
}

func TestRegisterCreated(t *testing.T) {
	svc := &stubAuthService{registerResult: &services.AuthResponse{
		User:  &models.User{ID: "user-1", Email: "amelia@example.com"},
		Token: "signed-token",
	}}
	mux := newAuthMux(svc)

	body := `{"email":"amelia@example.com","password":"wanderlust"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got services.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if got.Token != "signed-token" {
		t.Errorf("token = %q, want the issued token", got.Token)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must never carry password material")
	}
}

func TestRegisterValidationFailure(t *testing.T) {
	svc := &stubAuthService{err: &domain.ValidationError{Fields: []string{"email must be a valid email address"}}}
	mux := newAuthMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"nope"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(body.Errors) != 1 {
		t.Errorf("errors = %v, want one field message", body.Errors)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc := &stubAuthService{err: &domain.ConflictError{Message: "an account with this email already exists"}}
	mux := newAuthMux(svc)

	body := `{"email":"amelia@example.com","password":"wanderlust"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestLoginOK(t *testing.T) {
	svc := &stubAuthService{loginResult: &services.AuthResponse{
		User:  &models.User{ID: "user-1", Email: "amelia@example.com"},
		Token: "signed-token",
	}}
	mux := newAuthMux(svc)

	body := `{"email":"amelia@example.com","password":"wanderlust"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestLoginBadCredentialsUnauthorized(t *testing.T) {
	svc := &stubAuthService{err: &domain.UnauthorizedError{Message: "invalid email or password"}}
	mux := newAuthMux(svc)

	body := `{"email":"amelia@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var got struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if got.Error != "invalid email or password" {
		t.Errorf("error = %q, want the uniform credential message", got.Error)
	}
}

func TestLoginBadJSON(t *testing.T) {
	mux := newAuthMux(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
