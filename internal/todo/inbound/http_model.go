package inbound

import (
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/todo/entity"
)

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    int16  `json:"priority"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *int16  `json:"priority"`
}

type TodoResponse struct {
	ID          int64     `json:"id,string"`
	UserID      int64     `json:"user_id,string"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    int16     `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTodoResponse(todo entity.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		UserID:      todo.UserID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Priority:    todo.Priority,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

type CreateTodoResponse struct {
	TodoResponse
}

func (CreateTodoResponse) MessageKey() string { return i18n.KeyTodoCreated }

func (CreateTodoResponse) StatusCode() int { return http.StatusCreated }

func (r CreateTodoResponse) Location() string {
	return "/api/v1/todos/" + strconv.FormatInt(r.ID, 10)
}

type ListTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int64          `json:"total"`
	Page  int32          `json:"page"`
	Size  int32          `json:"size"`
}

func newListTodosResponse(todos []entity.Todo, total int64, page, size int32) ListTodosResponse {
	return ListTodosResponse{
		Todos: lo.Map(todos, func(todo entity.Todo, _ int) TodoResponse {
			return newTodoResponse(todo)
		}),
		Total: total,
		Page:  page,
		Size:  size,
	}
}

func (ListTodosResponse) MessageKey() string { return i18n.KeyTodoListRetrieved }

type DetailTodoResponse struct {
	TodoResponse
}

func (DetailTodoResponse) MessageKey() string { return i18n.KeyTodoRetrieved }

type UpdateTodoResponse struct {
	TodoResponse
}

func (UpdateTodoResponse) MessageKey() string { return i18n.KeyTodoUpdated }

type ToggleTodoResponse struct {
	TodoResponse
}

func (ToggleTodoResponse) MessageKey() string { return i18n.KeyTodoToggled }
