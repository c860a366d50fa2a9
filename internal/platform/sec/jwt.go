// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, token
// signing) from the domain logic. The [TokenCodec] is injected into the
// authentication service; nothing here reads ambient configuration.
package sec

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// MinSecretLength is the smallest accepted HMAC secret, in bytes (256 bits for HS256).
const MinSecretLength = 32

// ErrInvalidToken is returned by [TokenCodec.Decode] for blank, malformed,
// tampered, foreign, or expired tokens.
var ErrInvalidToken = apperr.New(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid access token")

// AccessClaims represents the payload embedded inside an access token.
//
// UserID is a pointer so a token that omits the claim can be told apart from
// a token issued for user 0.
type AccessClaims struct {
	UserID *int64 `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 access tokens carrying a single userId claim.
//
// # Concurrency
//
// The signing key is captured at construction and never mutated, so a single
// codec may be shared by every request goroutine without locking.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

// NewTokenCodec creates a codec bound to secret.
//
// A zero ttl issues tokens without an exp claim. A positive ttl adds exp and
// expired tokens fail decoding.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}
	if ttl < 0 {
		return nil, errors.New("sec: token ttl must not be negative")
	}

	return &TokenCodec{
		key: []byte(secret),
		ttl: ttl,
	}, nil
}

// Encode returns a signed token whose payload carries userID as the userId claim.
func (codec *TokenCodec) Encode(userID int64) (string, error) {
	claims := AccessClaims{UserID: &userID}
	if codec.ttl > 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(codec.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Decode verifies token and returns its userId claim.
//
// Blank input is rejected before the parser runs. The signature is checked
// before any claim is read, and only HS256 is accepted.
func (codec *TokenCodec) Decode(token string) (int64, error) {
	if strings.TrimSpace(token) == "" {
		return 0, ErrInvalidToken
	}

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, codec.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return 0, ErrInvalidToken.WithCause(err)
	}

	if !parsed.Valid || claims.UserID == nil {
		return 0, ErrInvalidToken
	}

	return *claims.UserID, nil
}

func (codec *TokenCodec) keyFunc(*jwt.Token) (any, error) {
	return codec.key, nil
}
