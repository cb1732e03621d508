package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"recruit-backend/internal/shared/auth"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/users"
)

// Service implements registration, login and password-reset flows.
type Service struct {
	Users  users.Repo
	OTP    OTPStore
	Mailer Mailer
}

// Registration holds the pending-account payload echoed between the
// register and verify-otp steps.
type Registration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Company    string `json:"company,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// BeginRegistration rejects taken emails, then issues and mails an OTP.
func (s *Service) BeginRegistration(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return users.ErrEmailExists
	} else if !errors.Is(err, users.ErrNotFound) {
		return err
	}

	return s.issueOTP(email)
}

// CompleteRegistration consumes the OTP and creates the account with a
// bcrypt-hashed password.
func (s *Service) CompleteRegistration(ctx context.Context, email, code string, reg Registration) (users.User, error) {
	email = normalizeEmail(email)
	if reg.Password == "" {
		return users.User{}, fmt.Errorf("%w: invalid user data received", ErrInvalidInput)
	}
	if !s.OTP.Consume(email, code) {
		return users.User{}, ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return users.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := users.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        email,
		PasswordHash: string(hash),
		Company:      reg.Company,
		Position:     reg.Position,
		Department:   reg.Department,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return users.User{}, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, users.User, error) {
	email = normalizeEmail(email)
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", users.User{}, ErrInvalidCredentials
		}
		return "", users.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", users.User{}, ErrInvalidCredentials
	}

	token, err := auth.SignJWT(auth.Claims{Sub: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		return "", users.User{}, err
	}
	return token, user, nil
}

// BeginPasswordReset issues an OTP for an existing account email.
func (s *Service) BeginPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := s.Users.GetByEmail(ctx, email); err != nil {
		return err
	}
	return s.issueOTP(email)
}

// CompletePasswordReset consumes the OTP and stores the new password hash.
func (s *Service) CompletePasswordReset(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if !s.OTP.Consume(email, code) {
		return ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Users.UpdatePassword(ctx, email, string(hash))
}

func (s *Service) issueOTP(email string) error {
	code := generateOTP()
	s.OTP.Put(email, code)
	if err := s.Mailer.SendOTP(email, code); err != nil {
		return err
	}
	metrics.IncOTPIssued()
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
