package services

import (
	"context"
	"testing"
	"time"
	pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
	"github.com/langfu/langfu-backend/internal/repos"
	"github.com/langfu/langfu-backend/internal/requestdata"
	"github.com/langfu/langfu-backend/internal/types"
)

func newAuth(t *testing.T) *authService {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	progressService := NewProgressService(db, log, repos.NewProgressRepo(db, log), nil)
	return NewAuthService(db, log, repos.NewUserRepo(db, log), progressService, "test-secret", time.Hour).(*authService)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	as := newAuth(t)
	ctx := context.Background()

	user := &types.User{
		Email:    "Anna@Example.com",
		Password: "secret-password-1",
		Name:     "Anna",
	}
	token, err := as.RegisterUser(ctx, user)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("register must return a token")
	}
	if user.Email != "anna@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.CurrentLanguage != "de" {
		t.Fatalf("default language = %q", user.CurrentLanguage)
	}

	// Registration seeds a progress row for the user's language.
	var progress types.Progress
	if err := as.db.Where("user_id = ? AND language = ?", user.ID, "de").First(&progress).Error; err != nil {
		t.Fatalf("progress row not created: %v", err)
	}

	loggedIn, loginToken, err := as.LoginUser(ctx, "anna@example.com", "secret-password-1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != user.ID || loginToken == "" {
		t.Fatalf("login returned wrong user or empty token")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	as := newAuth(t)
	ctx := context.Background()

	user := &types.User{Email: "bob@example.com", Password: "correct-password", Name: "Bob"}
	if _, err := as.RegisterUser(ctx, user); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := as.LoginUser(ctx, "bob@example.com", "wrong-password"); err != pkgerrors.ErrUnauthorized {
		t.Fatalf("wrong password error = %v, want ErrUnauthorized", err)
	}
	if _, _, err := as.LoginUser(ctx, "nobody@example.com", "correct-password"); err != pkgerrors.ErrUnauthorized {
		t.Fatalf("unknown email error = %v, want ErrUnauthorized", err)
	}
}

func TestSetContextFromToken(t *testing.T) {
	as := newAuth(t)
	ctx := context.Background()

	user := &types.User{Email: "carol@example.com", Password: "another-password", Name: "Carol"}
	token, err := as.RegisterUser(ctx, user)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	authedCtx, err := as.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("token rejected: %v", err)
	}
	rd := requestdata.GetRequestData(authedCtx)
	if rd == nil {
		t.Fatalf("request data missing from context")
	}
	if rd.UserID != user.ID {
		t.Fatalf("user id = %s, want %s", rd.UserID, user.ID)
	}

	if _, err := as.SetContextFromToken(ctx, ""); err != pkgerrors.ErrUnauthorized {
		t.Fatalf("empty token error = %v, want ErrUnauthorized", err)
	}
	if _, err := as.SetContextFromToken(ctx, "not-a-token"); err == nil {
		t.Fatalf("garbage token must be rejected")
	}
}
