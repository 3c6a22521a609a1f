package user

import (
	"context"
	"errors"
	"testing"

	"serveease/storage"
)

func TestLoginWithDemoCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	u, err := svc.Login(ctx, DefaultEmail, DefaultPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Email != DefaultEmail {
		t.Errorf("email: got %q", u.Email)
	}

	current, ok := svc.CurrentUser(ctx)
	if !ok || current.Email != DefaultEmail {
		t.Errorf("CurrentUser after login: %+v ok=%v", current, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	tests := []struct{ email, password string }{
		{DefaultEmail, "wrong"},
		{"someone@else.com", DefaultPassword},
		{"", ""},
	}
	for _, tt := range tests {
		if _, err := svc.Login(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): got %v, want ErrInvalidCredentials", tt.email, tt.password, err)
		}
	}
	if _, ok := svc.CurrentUser(ctx); ok {
		t.Error("no record should persist after failed logins")
	}
}

func TestLogoutRemovesRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	if _, err := svc.Login(ctx, DefaultEmail, DefaultPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := svc.CurrentUser(ctx); ok {
		t.Error("CurrentUser should be absent after logout")
	}
}

func TestCorruptAuthRecordReadsAsSignedOut(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, storage.KeyAuth, "not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok := NewService(kv).CurrentUser(ctx); ok {
		t.Error("corrupt auth record must read as signed out")
	}
}
