package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

type UserDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	err := s.repoDB.DeleteUser(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound(goerror.CodeUserNotFound, "user not found").
			WithDetails("user_id", in.ID)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete user", "user_id", in.ID, "error", err)
		return goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	return nil
}
