package entity

import "time"

// User is a registered account. Email is optional; Password holds the
// bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserListFilterData carries pagination values for the user directory.
type UserListFilterData struct {
	Size   int32
	Offset int32
}
