package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

type TodoToggleInput struct {
	ID int64 `validate:"required,gt=0"`
}

type TodoToggleOutput struct {
	Todo entity.Todo
}

// TodoToggle flips the completed flag of a todo.
func (s *Usecase) TodoToggle(ctx context.Context, in TodoToggleInput) (*TodoToggleOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoToggle")
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

	todo.Completed = !todo.Completed
	todo.UpdatedAt = s.clock.Now()

	if err := s.repoDB.UpdateTodo(ctx, *todo); err != nil {
		slog.ErrorContext(ctx, "failed to repo toggle todo", "todo_id", in.ID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return &TodoToggleOutput{Todo: *todo}, nil
}
