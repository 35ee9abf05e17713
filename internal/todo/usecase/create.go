package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

type TodoCreateInput struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"max=1000"`
	Completed   bool
	Priority    int16 `validate:"min=1,max=5"`
}

type TodoCreateOutput struct {
	Todo entity.Todo
}

func (s *Usecase) TodoCreate(ctx context.Context, in TodoCreateInput) (*TodoCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == 0 {
		in.Priority = 1 // default priority, lowest
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.WrapValidation(err, goerror.CodeTodoValidation)
	}

	now := s.clock.Now()
	todo := entity.Todo{
		ID:          s.uid.Generate(),
		UserID:      clm.UserID,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		Priority:    in.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repoDB.CreateTodo(ctx, todo); err != nil {
		slog.ErrorContext(ctx, "failed to repo create todo", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return &TodoCreateOutput{Todo: todo}, nil
}
