package inbound

import (
	"context"

	"github.com/shandysiswandi/godo/internal/pkg/router"
	"github.com/shandysiswandi/godo/internal/todo/usecase"
)

type uc interface {
	TodoCreate(ctx context.Context, in usecase.TodoCreateInput) (*usecase.TodoCreateOutput, error)
	TodoList(ctx context.Context, in usecase.TodoListInput) (*usecase.TodoListOutput, error)
	TodoDetail(ctx context.Context, in usecase.TodoDetailInput) (*usecase.TodoDetailOutput, error)
	TodoUpdate(ctx context.Context, in usecase.TodoUpdateInput) (*usecase.TodoUpdateOutput, error)
	TodoToggle(ctx context.Context, in usecase.TodoToggleInput) (*usecase.TodoToggleOutput, error)
	TodoDelete(ctx context.Context, in usecase.TodoDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Todo Management (need authenticated)
	r.POST("/api/v1/todos", end.Create)
	r.GET("/api/v1/todos", end.List)
	r.GET("/api/v1/todos/:id", end.Detail)
	r.PUT("/api/v1/todos/:id", end.Update)
	r.PATCH("/api/v1/todos/:id/toggle", end.Toggle)
	r.DELETE("/api/v1/todos/:id", end.Delete)
}
