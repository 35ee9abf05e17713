package db

import (
	"context"

	"github.com/shandysiswandi/godo/internal/todo/entity"
)

const createTodoSQL = `
INSERT INTO todos (id, user_id, title, description, completed, priority, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (s *DB) CreateTodo(ctx context.Context, todo entity.Todo) (err error) {
	ctx, span := s.startSpan(ctx, "CreateTodo")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createTodoSQL,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.Priority,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}
