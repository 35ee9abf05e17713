package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

const getUserByIDSQL = `
SELECT id, username, email, password, created_at, updated_at
FROM users
WHERE id = $1`

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

const getUserByUsernameSQL = `
SELECT id, username, email, password, created_at, updated_at
FROM users
WHERE username = $1`

func (s *DB) GetUserByUsername(ctx context.Context, username string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(s.conn.QueryRow(ctx, getUserByUsernameSQL, username))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

const getUserListSQL = `
SELECT id, username, email, password, created_at, updated_at
FROM users
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countUsersSQL = `SELECT COUNT(*) FROM users`

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilterData) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, countUsersSQL).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	rows, err := s.conn.Query(ctx, getUserListSQL, filter.Size, filter.Offset)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	users := make([]entity.User, 0, filter.Size)
	for rows.Next() {
		user, err := s.scanUser(rows)
		if err != nil {
			return nil, 0, s.mapError(err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return users, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *DB) scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	var email pgtype.Text

	err := row.Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		user.Email = email.String
	}

	return &user, nil
}
