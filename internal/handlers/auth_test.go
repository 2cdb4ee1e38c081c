package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"github.com/gin-gonic/gin"
	pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
	"github.com/langfu/langfu-backend/internal/types"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (string, error) {
	if s.registerErr != nil {
		return "", s.registerErr
	}
	return "token", nil
}

func (s *stubAuthService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &types.User{Email: email}, "token", nil
}

func (s *stubAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	return ctx, nil
}

func (s *stubAuthService) GetAccessTTL() time.Duration {
	return time.Hour
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handler(c)
	return rec
}

func TestLoginErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "missing fields are a bad request",
			serviceErr: fmt.Errorf("Email is required to login: %w", pkgerrors.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad credentials stay unauthorized",
			serviceErr: pkgerrors.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "storage failures are a generic 500",
			serviceErr: fmt.Errorf("Error retrieving user by email: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ah := NewAuthHandler(&stubAuthService{loginErr: tc.serviceErr}, nil, "langfu-auth")
			rec := postJSON(t, ah.Login, "/api/auth/login", `{"email":"a@example.com","password":"pw"}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRegisterErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "validation failures are a bad request",
			serviceErr: fmt.Errorf("Email is already in use: %w", pkgerrors.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failures are a generic 500",
			serviceErr: fmt.Errorf("Failed to create user: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ah := NewAuthHandler(&stubAuthService{registerErr: tc.serviceErr}, nil, "langfu-auth")
			rec := postJSON(t, ah.Register, "/api/auth/register", `{"email":"a@example.com","password":"pw","name":"A"}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRegisterInternalErrorHidesDetails(t *testing.T) {
	ah := NewAuthHandler(&stubAuthService{registerErr: fmt.Errorf("Failed to create user: dsn password leaked")}, nil, "langfu-auth")
	rec := postJSON(t, ah.Register, "/api/auth/register", `{"email":"a@example.com","password":"pw","name":"A"}`)
	if strings.Contains(rec.Body.String(), "dsn password") {
		t.Fatalf("internal error detail leaked to the client: %s", rec.Body.String())
	}
}
