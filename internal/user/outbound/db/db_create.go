package db

import (
	"context"

	"github.com/shandysiswandi/godo/internal/user/entity"
)

const createUserSQL = `
INSERT INTO users (id, username, email, password, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	var email *string
	if user.Email != "" {
		email = &user.Email
	}

	_, err = s.conn.Exec(ctx, createUserSQL,
		user.ID,
		user.Username,
		email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}
