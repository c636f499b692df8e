package apperr

import (
	"fmt"
	"time"
)

// AuthError is the root of the authentication layer.
type AuthError struct {
	base
}

func (e *AuthError) Error() string { return e.render("AuthError", "") }
func (e *AuthError) Kind() Kind    { return KindAuth }

func NewAuth(msg string) *AuthError {
	return &AuthError{base{Msg: msg}}
}

// InvalidCredentialsError reports a rejected login attempt.
type InvalidCredentialsError struct {
	base
}

func (e *InvalidCredentialsError) Error() string { return e.render("InvalidCredentialsError", "") }
func (e *InvalidCredentialsError) Kind() Kind    { return KindInvalidCredentials }

func NewInvalidCredentials(msg string) *InvalidCredentialsError {
	return &InvalidCredentialsError{base{Msg: msg}}
}

// TokenExpiredError reports an authentication token past its expiry.
type TokenExpiredError struct {
	base
	ExpiredAt time.Time
}

func (e *TokenExpiredError) Error() string {
	return e.render("TokenExpiredError", fmt.Sprintf(" (Expired: %s)", e.ExpiredAt.Format(time.RFC3339)))
}
func (e *TokenExpiredError) Kind() Kind { return KindTokenExpired }

func NewTokenExpired(msg string, expiredAt time.Time) *TokenExpiredError {
	return &TokenExpiredError{base: base{Msg: msg}, ExpiredAt: expiredAt}
}
