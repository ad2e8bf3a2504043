package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token has no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the exp claim of a JWT access token without verifying
// its signature. The client cannot verify backend tokens; the value is only
// used to refresh a stale token before it is sent.
//
// Returns an error for opaque (non-JWT) tokens and for tokens without exp.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
