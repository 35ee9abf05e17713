package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

type MeOutput struct {
	User entity.User
}

// Me returns the account of the requesting user, resolved from claims.
func (s *Usecase) Me(ctx context.Context) (*MeOutput, error) {
	ctx, span := s.startSpan(ctx, "Me")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		// Token outlived the account.
		return nil, goerror.NewUnauthorized(goerror.CodeUserUnauthorized, "account no longer exists")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeUserStorage)
	}

	return &MeOutput{User: *user}, nil
}
