package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

type UserDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type UserDetailOutput struct {
	User entity.User
}

func (s *Usecase) UserDetail(ctx context.Context, in UserDetailInput) (*UserDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "UserDetail")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
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

	return &UserDetailOutput{User: *user}, nil
}
