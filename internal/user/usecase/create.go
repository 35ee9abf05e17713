package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

type UserCreateInput struct {
	Username string `validate:"required,min=2,max=50"`
	Email    string `validate:"omitempty,email"`
	Password string `validate:"required,password"`
}

type UserCreateOutput struct {
	User entity.User
}

func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*UserCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeUserValidation)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewInternal(err, goerror.CodeUserInternal)
	}

	now := s.clock.Now()
	user := entity.User{
		ID:        s.uid.Generate(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repoDB.CreateUser(ctx, user)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "user account already exists", "username", in.Username)
		return nil, goerror.NewConflict(goerror.CodeUserAlreadyExists, "username or email already exists")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "username", in.Username, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	return &UserCreateOutput{User: user}, nil
}
