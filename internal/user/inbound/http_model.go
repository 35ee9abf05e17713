package inbound

import (
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/user/entity"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (LoginResponse) MessageKey() string { return i18n.KeyLoginSuccess }

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type CreateUserResponse struct {
	UserResponse
}

func (CreateUserResponse) MessageKey() string { return i18n.KeyUserCreated }

func (CreateUserResponse) StatusCode() int { return http.StatusCreated }

func (r CreateUserResponse) Location() string {
	return "/api/v1/users/" + strconv.FormatInt(r.ID, 10)
}

type DetailUserResponse struct {
	UserResponse
}

func (DetailUserResponse) MessageKey() string { return i18n.KeyUserRetrieved }

type UpdateUserResponse struct {
	UserResponse
}

func (UpdateUserResponse) MessageKey() string { return i18n.KeyUserUpdated }

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int32          `json:"page"`
	Size  int32          `json:"size"`
}

func newListUsersResponse(users []entity.User, total int64, page, size int32) ListUsersResponse {
	return ListUsersResponse{
		Users: lo.Map(users, func(user entity.User, _ int) UserResponse {
			return newUserResponse(user)
		}),
		Total: total,
		Page:  page,
		Size:  size,
	}
}

func (ListUsersResponse) MessageKey() string { return i18n.KeyUserListRetrieved }

type OTPRequestRequest struct {
	Email string `json:"email"`
}

type OTPVerifyRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

// OTPRequestResponse echoes the issued code outside production so the
// flow can be exercised without a mailbox.
type OTPRequestResponse struct {
	Email            string `json:"email"`
	OTPCode          string `json:"otp_code,omitempty"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`

	messageKey string
}

func (r OTPRequestResponse) MessageKey() string { return r.messageKey }

type OTPVerifyResponse struct {
	Email string `json:"email"`
}

func (OTPVerifyResponse) MessageKey() string { return i18n.KeyOTPVerified }
