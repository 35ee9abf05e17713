package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

// UserUpdateInput carries a partial update. Nil fields keep the stored
// value; a changed password is rehashed before storage.
type UserUpdateInput struct {
	ID       int64 `validate:"required,gt=0"`
	Username *string
	Email    *string
	Password *string
}

type UserUpdateOutput struct {
	User entity.User
}

func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) (*UserUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	if violations := validateUpdateFields(in); len(violations) > 0 {
		return nil, goerror.NewValidation(goerror.CodeUserValidation, violations)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound(goerror.CodeUserNotFound, "user not found").
			WithDetails("user_id", in.ID)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user", "user_id", in.ID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(strings.ToLower(*in.Email))
	}
	if in.Password != nil {
		hashedPassword, err := s.bcrypt.Hash(*in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "user_id", in.ID, "error", err)
			return nil, goerror.NewInternal(err, goerror.CodeUserInternal)
		}
		user.Password = string(hashedPassword)
	}
	user.UpdatedAt = s.clock.Now()

	err = s.repoDB.UpdateUser(ctx, *user)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewConflict(goerror.CodeUserAlreadyExists, "username or email already exists")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update user", "user_id", in.ID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	return &UserUpdateOutput{User: *user}, nil
}

func validateUpdateFields(in UserUpdateInput) map[string]string {
	violations := map[string]string{}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if len(username) < 2 || len(username) > 50 {
			violations["username"] = "username must be between 2 and 50 characters"
		}
	}
	if in.Email != nil && *in.Email != "" {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			violations["email"] = "email must be a valid address"
		}
	}
	if in.Password != nil && (len(*in.Password) < 4 || len(*in.Password) > 255) {
		violations["password"] = "password must be between 4 and 255 characters"
	}

	return violations
}
