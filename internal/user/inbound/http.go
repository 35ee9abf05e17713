package inbound

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/router"
	"github.com/shandysiswandi/godo/internal/user/usecase"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*usecase.UserCreateOutput, error)
	Me(ctx context.Context) (*usecase.MeOutput, error)
	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.UserDetailOutput, error)
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) (*usecase.UserUpdateOutput, error)
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error

	OTPRequest(ctx context.Context, in usecase.OTPRequestInput) (*usecase.OTPRequestOutput, error)
	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error)
	OTPResend(ctx context.Context, in usecase.OTPResendInput) (*usecase.OTPRequestOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Account (public)
	r.POST("/api/v1/users/login", end.Login)
	r.POST("/api/v1/users", end.Create)

	// Email verification (public)
	r.POST("/api/v1/users/otp/request", end.OTPRequest)
	r.POST("/api/v1/users/otp/verify", end.OTPVerify)
	r.POST("/api/v1/users/otp/resend", end.OTPResend)

	// User Directory (need authenticated)
	r.GET("/api/v1/users", end.List)
	r.GET("/api/v1/users/:id", end.Detail) // also serves /api/v1/users/me
	r.PUT("/api/v1/users/:id", end.Update)
	r.PATCH("/api/v1/users/:id", end.Update)
	r.DELETE("/api/v1/users/:id", end.Delete)
}
