// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
type Service struct {
	userRepository auth.UserRepository
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo auth.UserRepository, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		logger:         logger,
	}
}

/*
Register validates uniqueness, hashes the password, and persists a new account.

Returns:
  - *auth.User: Created entity
  - error: ErrEmailDuplicated or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*auth.User, error) {
	exists, err := service.userRepository.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, fmt.Errorf("account_service_exists_failed: %w", err)
	}
	if exists {
		return nil, ErrEmailDuplicated
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &auth.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		// A concurrent registration can still win the unique index.
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, ErrEmailDuplicated
		}
		return nil, fmt.Errorf("account_service_register_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_registered", slog.Int64("user_id", user.ID))
	return user, nil
}

/*
GetProfile retrieves the account of the given user.

Returns:
  - *auth.User: The hydrated user
  - error: auth.ErrUserNotFound or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID int64) (*auth.User, error) {
	return service.userRepository.FindByID(context, userID)
}

/*
Update applies a partial set of changes to the caller's own account.

Description: Rejects cross-account edits, re-hashes a new password, and keeps
unchanged fields as they are.

Returns:
  - *auth.User: The updated user
  - error: ErrNotOwner, auth.ErrUserNotFound, or storage errors
*/
func (service *Service) Update(context context.Context, callerID, targetID int64, input UpdateInput) (*auth.User, error) {
	if callerID != targetID {
		return nil, ErrNotOwner
	}

	user, err := service.userRepository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	user.Name = pointer.Fallback(input.Name, user.Name)

	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_updated", slog.Int64("user_id", user.ID))
	return user, nil
}

/*
Delete soft-deletes the caller's own account.

Returns:
  - error: ErrNotOwner, auth.ErrUserNotFound, or storage errors
*/
func (service *Service) Delete(context context.Context, callerID, targetID int64) error {
	if callerID != targetID {
		return ErrNotOwner
	}

	if err := service.userRepository.SoftDelete(context, targetID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "user_deleted", slog.Int64("user_id", targetID))
	return nil
}
