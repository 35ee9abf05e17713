package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

// sortableColumns is the whitelist of fields a list request may sort by.
// Anything else falls back to created_at.
var sortableColumns = map[string]struct{}{
	"created_at": {},
	"updated_at": {},
	"title":      {},
	"priority":   {},
}

type TodoListInput struct {
	Page      int32
	Size      int32
	Completed *bool
	Priority  *int16
	SortBy    string
	SortOrder string
}

type TodoListOutput struct {
	Page  int32
	Size  int32
	Total int64
	Todos []entity.Todo
}

func (s *Usecase) TodoList(ctx context.Context, in TodoListInput) (*TodoListOutput, error) {
	ctx, span := s.startSpan(ctx, "TodoList")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.Priority != nil && (*in.Priority < 1 || *in.Priority > 5) {
		return nil, goerror.NewValidation(goerror.CodeTodoInvalidPriority, map[string]string{
			"priority": "priority must be between 1 and 5",
		})
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}

	sortBy := strings.TrimSpace(strings.ToLower(in.SortBy))
	if _, ok := sortableColumns[sortBy]; !ok {
		sortBy = "created_at"
	}

	sortOrder := strings.TrimSpace(strings.ToLower(in.SortOrder))
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	filterData := entity.TodoListFilterData{
		UserID:         clm.UserID,
		OrderBy:        sortBy,
		OrderDirection: sortOrder,
		Size:           in.Size,
		Offset:         (max(in.Page, 1) - 1) * in.Size,
	}
	if in.Completed != nil {
		filterData.IsFilterByCompleted = true
		filterData.Completed = *in.Completed
	}
	if in.Priority != nil {
		filterData.IsFilterByPriority = true
		filterData.Priority = *in.Priority
	}

	todos, count, err := s.repoDB.GetTodoList(ctx, filterData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list todos", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewStorage(err, goerror.CodeTodoStorage)
	}

	return &TodoListOutput{
		Page:  max(in.Page, 1),
		Size:  in.Size,
		Total: count,
		Todos: todos,
	}, nil
}
