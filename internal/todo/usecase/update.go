package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

// TodoUpdateInput carries a partial update. Nil fields keep the stored
// value.
type TodoUpdateInput struct {
	ID          int64 `validate:"required,gt=0"`
	Title       *string
	Description *string
	Completed   *bool
	Priority    *int16
}

type TodoUpdateOutput struct {
	Todo entity.Todo
}

func (s *Usecase) TodoUpdate(ctx context.Context, in TodoUpdateInput) (*TodoUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeTodoValidation)
	}

	if violations := validateUpdateFields(in); len(violations) > 0 {
		return nil, goerror.NewValidation(goerror.CodeTodoValidation, violations)
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

	if in.Title != nil {
		todo.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		todo.Description = *in.Description
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	if in.Priority != nil {
		todo.Priority = *in.Priority
	}
	todo.UpdatedAt = s.clock.Now()

	if err := s.repoDB.UpdateTodo(ctx, *todo); err != nil {
		slog.ErrorContext(ctx, "failed to repo update todo", "todo_id", in.ID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return &TodoUpdateOutput{Todo: *todo}, nil
}

func validateUpdateFields(in TodoUpdateInput) map[string]string {
	violations := map[string]string{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" || len(title) > 200 {
			violations["title"] = "title must be between 1 and 200 characters"
		}
	}
	if in.Description != nil && len(*in.Description) > 1000 {
		violations["description"] = "description must be at most 1000 characters"
	}
	if in.Priority != nil && (*in.Priority < 1 || *in.Priority > 5) {
		violations["priority"] = "priority must be between 1 and 5"
	}

	return violations
}
