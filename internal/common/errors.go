// Package common defines sentinel errors shared across walletgate
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Derivation-level errors (missing identifier or secret).
	ErrInvalidInput = errors.New("invalid input")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
