package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recruit-backend/internal/users"
)

type captureMailer struct {
	to   string
	code string
	err  error
}

func (m *captureMailer) SendOTP(to, code string) error {
	m.to = to
	m.code = code
	return m.err
}

func newTestService() (*Service, *captureMailer) {
	mailer := &captureMailer{}
	svc := &Service{
		Users:  users.NewMemoryRepo(),
		OTP:    NewCacheOTPStore(time.Minute),
		Mailer: mailer,
	}
	return svc, mailer
}

func TestRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newTestService()

	if err := svc.BeginRegistration(ctx, "Jane@Example.com"); err != nil {
		t.Fatalf("begin registration: %v", err)
	}
	if mailer.to != "jane@example.com" {
		t.Fatalf("expected mail to jane@example.com, got %q", mailer.to)
	}
	if len(mailer.code) != 6 {
		t.Fatalf("expected 6-digit OTP, got %q", mailer.code)
	}

	reg := Registration{Name: "Jane", Email: "jane@example.com", Password: "s3cret", Company: "Acme"}
	user, err := svc.CompleteRegistration(ctx, "jane@example.com", mailer.code, reg)
	if err != nil {
		t.Fatalf("complete registration: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected user id to be set")
	}
	if user.PasswordHash == reg.Password {
		t.Fatalf("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// A consumed OTP cannot be replayed.
	if _, err := svc.CompleteRegistration(ctx, "jane@example.com", mailer.code, reg); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP on replay, got %v", err)
	}
}

func TestBeginRegistrationRejectsExistingEmail(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newTestService()

	if err := svc.BeginRegistration(ctx, "jane@example.com"); err != nil {
		t.Fatalf("begin registration: %v", err)
	}
	if _, err := svc.CompleteRegistration(ctx, "jane@example.com", mailer.code, Registration{Name: "Jane", Password: "pw"}); err != nil {
		t.Fatalf("complete registration: %v", err)
	}

	if err := svc.BeginRegistration(ctx, "jane@example.com"); !errors.Is(err, users.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestCompleteRegistrationRejectsWrongOTP(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newTestService()

	if err := svc.BeginRegistration(ctx, "jane@example.com"); err != nil {
		t.Fatalf("begin registration: %v", err)
	}

	wrong := "000000"
	if wrong == mailer.code {
		wrong = "000001"
	}
	_, err := svc.CompleteRegistration(ctx, "jane@example.com", wrong, Registration{Password: "pw"})
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newTestService()

	if err := svc.BeginRegistration(ctx, "jane@example.com"); err != nil {
		t.Fatalf("begin registration: %v", err)
	}
	if _, err := svc.CompleteRegistration(ctx, "jane@example.com", mailer.code, Registration{Name: "Jane", Password: "s3cret"}); err != nil {
		t.Fatalf("complete registration: %v", err)
	}

	token, user, err := svc.Login(ctx, "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("unexpected user in login response: %+v", user)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newTestService()

	if err := svc.BeginRegistration(ctx, "jane@example.com"); err != nil {
		t.Fatalf("begin registration: %v", err)
	}
	if _, err := svc.CompleteRegistration(ctx, "jane@example.com", mailer.code, Registration{Name: "Jane", Password: "old-pass"}); err != nil {
		t.Fatalf("complete registration: %v", err)
	}

	if err := svc.BeginPasswordReset(ctx, "nobody@example.com"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}

	if err := svc.BeginPasswordReset(ctx, "jane@example.com"); err != nil {
		t.Fatalf("begin password reset: %v", err)
	}
	if err := svc.CompletePasswordReset(ctx, "jane@example.com", mailer.code, "new-pass"); err != nil {
		t.Fatalf("complete password reset: %v", err)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "old-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "jane@example.com", "new-pass"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestCacheOTPStoreExpiry(t *testing.T) {
	store := NewCacheOTPStore(10 * time.Millisecond)
	store.Put("jane@example.com", "123456")
	time.Sleep(30 * time.Millisecond)
	if store.Consume("jane@example.com", "123456") {
		t.Fatalf("expected expired OTP to be rejected")
	}
}
