// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/catalog/internal/platform/sec"
)

// # Contracts & Types

// TokenCodec defines the contract for signing and verifying access tokens.
//
// [sec.TokenCodec] is the production implementation.
type TokenCodec interface {
	// Encode returns a signed token carrying userID.
	Encode(userID int64) (string, error)

	// Decode verifies token and returns the embedded user ID.
	Decode(token string) (int64, error)
}

// Service implements user authentication use cases.
//
// It holds no per-call state, so one instance serves every request concurrently.
type Service struct {
	userRepository UserRepository
	tokenCodec     TokenCodec
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, codec TokenCodec) *Service {
	return &Service{
		userRepository: userRepo,
		tokenCodec:     codec,
	}
}

// # Authentication Flow

/*
Login validates credentials and issues an access token.

Description: Looks the account up by email, compares the password against the
stored bcrypt hash, and signs a token carrying the account ID.

Returns:
  - string: Signed access token
  - error: ErrUserNotFound, ErrInvalidPassword, or internal failures
*/
func (service *Service) Login(context context.Context, credentials Credentials) (string, error) {
	user, err := service.userRepository.FindByEmail(context, credentials.Email)
	if err != nil {
		return "", err
	}

	if !sec.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", ErrInvalidPassword
	}

	token, err := service.tokenCodec.Encode(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return token, nil
}

/*
ParseToken resolves an access token into the user ID it was issued for.

Description: Blank, malformed, tampered, and foreign tokens are all reported
the same way. The codec failure stays in the error chain for logging.

Returns:
  - int64: User ID
  - error: ErrInvalidAccessToken
*/
func (service *Service) ParseToken(token string) (int64, error) {
	userID, err := service.tokenCodec.Decode(token)
	if err != nil {
		return 0, ErrInvalidAccessToken.WithCause(err)
	}
	return userID, nil
}
