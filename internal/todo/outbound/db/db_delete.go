package db

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
)

const deleteTodoSQL = `DELETE FROM todos WHERE id = $1 AND user_id = $2`

func (s *DB) DeleteTodo(ctx context.Context, id, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteTodo")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, deleteTodoSQL, id, userID)
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
