package inbound

import (
	"github.com/shandysiswandi/godo/internal/pkg/router"
	"github.com/shandysiswandi/godo/internal/todo/usecase"
)

// HTTPEndpoint exposes HTTP handlers for todo management.
type HTTPEndpoint struct {
	uc uc
}

// Create creates a new todo for the authenticated user.
// @Summary Create todo
// @Description Creates a new todo and returns it with a Location header.
// @Tags Todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo payload"
// @Success 201 {object} router.envelope{data=CreateTodoResponse} "Created todo"
// @Failure 422 {object} router.envelope "Validation error"
// @Router /api/v1/todos [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateTodoRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoCreate(r.Context(), usecase.TodoCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	})
	if err != nil {
		return nil, err
	}

	return CreateTodoResponse{TodoResponse: newTodoResponse(resp.Todo)}, nil
}

// List returns a filtered, sorted, paginated page of the user's todos.
// @Summary List todos
// @Description Lists todos with completed/priority filters, whitelisted sorting and pagination.
// @Tags Todos
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Param completed query bool false "Completed filter"
// @Param priority query int false "Priority filter (1..5)"
// @Param sort_by query string false "Sort field: created_at, updated_at, title, priority"
// @Param sort_order query string false "Sort order: asc or desc"
// @Success 200 {object} router.envelope{data=ListTodosResponse} "Todo page"
// @Router /api/v1/todos [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	in := usecase.TodoListInput{
		Page:      page,
		Size:      size,
		SortBy:    r.GetQuery("sort_by"),
		SortOrder: r.GetQuery("sort_order"),
	}

	if completed, present, err := r.GetQueryBool("completed"); err != nil {
		return nil, err
	} else if present {
		in.Completed = &completed
	}

	if r.GetQuery("priority") != "" {
		priority, err := r.GetQueryInt16("priority")
		if err != nil {
			return nil, err
		}
		in.Priority = &priority
	}

	resp, err := h.uc.TodoList(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return newListTodosResponse(resp.Todos, resp.Total, resp.Page, resp.Size), nil
}

// Detail returns a single todo by ID.
// @Summary Get todo
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} router.envelope{data=DetailTodoResponse} "Todo"
// @Failure 404 {object} router.envelope "Todo not found"
// @Router /api/v1/todos/{id} [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoDetail(r.Context(), usecase.TodoDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return DetailTodoResponse{TodoResponse: newTodoResponse(resp.Todo)}, nil
}

// Update applies a full or partial update to a todo.
// @Summary Update todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to update"
// @Success 200 {object} router.envelope{data=UpdateTodoResponse} "Updated todo"
// @Failure 404 {object} router.envelope "Todo not found"
// @Failure 422 {object} router.envelope "Validation error"
// @Router /api/v1/todos/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UpdateTodoRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoUpdate(r.Context(), usecase.TodoUpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	})
	if err != nil {
		return nil, err
	}

	return UpdateTodoResponse{TodoResponse: newTodoResponse(resp.Todo)}, nil
}

// Toggle flips the completed flag of a todo.
// @Summary Toggle todo completion
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} router.envelope{data=ToggleTodoResponse} "Toggled todo"
// @Failure 404 {object} router.envelope "Todo not found"
// @Router /api/v1/todos/{id}/toggle [patch]
func (h *HTTPEndpoint) Toggle(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.TodoToggle(r.Context(), usecase.TodoToggleInput{ID: id})
	if err != nil {
		return nil, err
	}

	return ToggleTodoResponse{TodoResponse: newTodoResponse(resp.Todo)}, nil
}

// Delete removes a todo.
// @Summary Delete todo
// @Tags Todos
// @Param id path int true "Todo ID"
// @Success 204 "No content"
// @Failure 404 {object} router.envelope "Todo not found"
// @Router /api/v1/todos/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.TodoDelete(r.Context(), usecase.TodoDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
