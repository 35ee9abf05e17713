package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

type TodoDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) TodoDelete(ctx context.Context, in TodoDeleteInput) error {
	ctx, span := s.startSpan(ctx, "TodoDelete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.WrapValidation(err, goerror.CodeTodoValidation)
	}

	err = s.repoDB.DeleteTodo(ctx, in.ID, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound(goerror.CodeTodoNotFound, "todo not found").
			WithDetails("todo_id", in.ID)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete todo", "todo_id", in.ID, "error", err)
		return goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return nil
}
