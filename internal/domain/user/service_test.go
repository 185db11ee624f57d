package user

import (
	"context"
	"testing"
	"time"

	jwtsvc "corpsite/internal/pkg/jwt"
	"corpsite/internal/store"
)

func newService() *Service {
	repo := NewRepository(store.NewMemory())
	return NewService(repo, jwtsvc.New("test-secret-123", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Editor", "editor@example.com", "password123", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != RoleEditor {
		t.Fatalf("default role = %q, want editor", u.Role)
	}
	if u.PasswordHash == "password123" {
		t.Fatal("password stored in the clear")
	}

	token, logged, err := svc.Login(ctx, "editor@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}
	if logged.ID != u.ID {
		t.Fatalf("logged in as %s, want %s", logged.ID, u.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Editor", "editor@example.com", "password123", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Unknown email and wrong password produce the same error.
	if _, _, err := svc.Login(ctx, "nobody@example.com", "password123"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "editor@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "First", "shared@example.com", "password123", RoleAdmin); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Second", "shared@example.com", "password456", ""); err != ErrEmailExists {
		t.Fatalf("duplicate email: err = %v, want ErrEmailExists", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Editor", "editor@example.com", "password123", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.ChangePassword(ctx, u.ID, "newpassword456"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login(ctx, "editor@example.com", "password123"); err != ErrInvalidCredentials {
		t.Fatalf("old password still valid: err = %v", err)
	}
	if _, _, err := svc.Login(ctx, "editor@example.com", "newpassword456"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
