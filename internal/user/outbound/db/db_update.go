package db

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/goerror"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

const updateUserSQL = `
UPDATE users
SET username = $2, email = $3, password = $4, updated_at = $5
WHERE id = $1`

func (s *DB) UpdateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUser")
	defer func() { s.endSpan(span, err) }()

	var email *string
	if user.Email != "" {
		email = &user.Email
	}

	tag, err := s.conn.Exec(ctx, updateUserSQL,
		user.ID,
		user.Username,
		email,
		user.Password,
		user.UpdatedAt,
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
