package accounts

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
