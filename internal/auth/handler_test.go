package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/botica-real/botica/internal/auth"
	"github.com/botica-real/botica/internal/platform/httpx"
	_ "github.com/botica-real/botica/testing"
)

type stubRepo struct {
	user *auth.User
}

func (s *stubRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	if s.user == nil || s.user.Username != username {
		return nil, httpx.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) CreateUser(ctx context.Context, username, passwordHash string) (*auth.User, error) {
	return nil, httpx.ErrDuplicate
}

func newRouter(t *testing.T, repo auth.Repository) (chi.Router, *auth.Service) {
	t.Helper()
	service := auth.NewService(repo, auth.NewTokenIssuer("test-secret", time.Hour))
	handler := auth.NewHandler(nil, service)
	r := chi.NewRouter()
	r.Route("/auth", handler.MountRoutes)
	return r, service
}

func activeUser(t *testing.T, username, password string) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &auth.User{ID: 1, Username: username, PasswordHash: string(hashed), IsActive: true}
}

func TestIssueTokenSuccess(t *testing.T) {
	router, service := newRouter(t, &stubRepo{user: activeUser(t, "admin", "botica123")})

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "botica123")
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	var body auth.TokenResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AccessToken == "" || body.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", body)
	}

	user, err := service.VerifyToken(context.Background(), body.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("expected admin, got %s", user.Username)
	}
}

func TestIssueTokenBadCredentials(t *testing.T) {
	router, _ := newRouter(t, &stubRepo{user: activeUser(t, "admin", "botica123")})

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "wrongpass")
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestIssueTokenMissingFields(t *testing.T) {
	router, _ := newRouter(t, &stubRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("username=admin"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestVerifyTokenEndpoint(t *testing.T) {
	router, service := newRouter(t, &stubRepo{user: activeUser(t, "admin", "botica123")})

	token, err := service.IssueToken(context.Background(), "admin", "botica123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/auth/verify_token/"+token, nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var body auth.VerifyResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Valid || body.Username != "admin" {
		t.Fatalf("unexpected verify response: %+v", body)
	}

	res = httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/auth/verify_token/not-a-token", nil))
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", res.Code)
	}
}

func TestVerifyTokenInactiveUser(t *testing.T) {
	user := activeUser(t, "admin", "botica123")
	router, service := newRouter(t, &stubRepo{user: user})

	token, err := service.IssueToken(context.Background(), "admin", "botica123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user.IsActive = false

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/auth/verify_token/"+token, nil))
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after deactivation, got %d", res.Code)
	}
}

func TestRequireTokenMiddleware(t *testing.T) {
	service := auth.NewService(&stubRepo{user: activeUser(t, "admin", "botica123")}, auth.NewTokenIssuer("test-secret", time.Hour))
	token, err := service.IssueToken(context.Background(), "admin", "botica123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var seen string
	protected := service.RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := auth.UserFromContext(r.Context()); user != nil {
			seen = user.Username
		}
		w.WriteHeader(http.StatusOK)
	}))

	// The dashboard sends the scheme in lowercase.
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "bearer "+token)
	res := httptest.NewRecorder()
	protected.ServeHTTP(res, req)
	if res.Code != http.StatusOK || seen != "admin" {
		t.Fatalf("expected authorized request, got %d (user %q)", res.Code, seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	res = httptest.NewRecorder()
	protected.ServeHTTP(res, req)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", res.Code)
	}
}
