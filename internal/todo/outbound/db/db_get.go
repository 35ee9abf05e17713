package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/shandysiswandi/godo/internal/todo/entity"
)

const getTodoByIDSQL = `
SELECT id, user_id, title, description, completed, priority, created_at, updated_at
FROM todos
WHERE id = $1 AND user_id = $2`

func (s *DB) GetTodoByID(ctx context.Context, id, userID int64) (_ *entity.Todo, err error) {
	ctx, span := s.startSpan(ctx, "GetTodoByID")
	defer func() { s.endSpan(span, err) }()

	var todo entity.Todo
	err = s.conn.QueryRow(ctx, getTodoByIDSQL, id, userID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.Priority,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &todo, nil
}

// listColumns maps whitelisted sort fields to their column expressions.
// The use case validates the field name; this map is the final word on
// what reaches the ORDER BY clause.
var listColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"priority":   "priority",
}

func (s *DB) GetTodoList(ctx context.Context, filter entity.TodoListFilterData) (_ []entity.Todo, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetTodoList")
	defer func() { s.endSpan(span, err) }()

	where := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.IsFilterByCompleted {
		args = append(args, filter.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}
	if filter.IsFilterByPriority {
		args = append(args, filter.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countSQL := "SELECT COUNT(*) FROM todos WHERE " + whereClause
	if err = s.conn.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	orderBy, ok := listColumns[filter.OrderBy]
	if !ok {
		orderBy = "created_at"
	}
	direction := "DESC"
	if filter.OrderDirection == "asc" {
		direction = "ASC"
	}

	args = append(args, filter.Size)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	listSQL := fmt.Sprintf(`
SELECT id, user_id, title, description, completed, priority, created_at, updated_at
FROM todos
WHERE %s
ORDER BY %s %s
LIMIT $%d OFFSET $%d`, whereClause, orderBy, direction, limitPos, offsetPos)

	rows, err := s.conn.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	todos := make([]entity.Todo, 0, filter.Size)
	for rows.Next() {
		var todo entity.Todo
		if err = rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Title,
			&todo.Description,
			&todo.Completed,
			&todo.Priority,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, 0, s.mapError(err)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return todos, total, nil
}
