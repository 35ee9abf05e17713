package db

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

const updateTodoSQL = `
UPDATE todos
SET title = $3, description = $4, completed = $5, priority = $6, updated_at = $7
WHERE id = $1 AND user_id = $2`

func (s *DB) UpdateTodo(ctx context.Context, todo entity.Todo) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateTodo")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, updateTodoSQL,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.Priority,
		todo.UpdatedAt,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
