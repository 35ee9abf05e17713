package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

type TodoDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type TodoDetailOutput struct {
	Todo entity.Todo
}

func (s *Usecase) TodoDetail(ctx context.Context, in TodoDetailInput) (*TodoDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoDetail")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeTodoValidation)
	}

	todo, err := s.repoDB.GetTodoByID(ctx, in.ID, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound(goerror.CodeTodoNotFound, "todo not found").
			WithDetails("todo_id", in.ID)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get todo", "todo_id", in.ID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return &TodoDetailOutput{Todo: *todo}, nil
}
