package tests

import (
	"net/http"
	"testing"
)

type todoPayload struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    int16  `json:"priority"`
}

func TestTodoCRUD(t *testing.T) {
	_, token := registerAndLogin(t)

	status, body := doJSON(t, http.MethodPost, "/api/v1/todos", map[string]any{
		"title":       "  buy milk  ",
		"description": "two liters",
	}, token)
	if status != http.StatusCreated {
		t.Fatalf("create returned %d: %s", status, body)
	}

	var created todoPayload
	decodeEnvelope(t, body, &created)
	if created.Title != "buy milk" {
		t.Fatalf("title not trimmed: %q", created.Title)
	}
	if created.Priority != 1 {
		t.Fatalf("expected default priority 1, got %d", created.Priority)
	}

	status, body = doJSON(t, http.MethodGet, "/api/v1/todos/"+created.ID, nil, token)
	if status != http.StatusOK {
		t.Fatalf("detail returned %d: %s", status, body)
	}
	var fetched todoPayload
	decodeEnvelope(t, body, &fetched)
	if fetched.ID != created.ID || fetched.Description != "two liters" {
		t.Fatalf("unexpected detail payload: %s", body)
	}

	status, body = doJSON(t, http.MethodPut, "/api/v1/todos/"+created.ID, map[string]any{
		"title":    "buy oat milk",
		"priority": 3,
	}, token)
	if status != http.StatusOK {
		t.Fatalf("update returned %d: %s", status, body)
	}
	var updated todoPayload
	decodeEnvelope(t, body, &updated)
	if updated.Title != "buy oat milk" || updated.Priority != 3 {
		t.Fatalf("partial update not applied: %s", body)
	}
	if updated.Description != "two liters" {
		t.Fatalf("untouched field changed: %s", body)
	}

	status, body = doJSON(t, http.MethodPatch, "/api/v1/todos/"+created.ID+"/toggle", nil, token)
	if status != http.StatusOK {
		t.Fatalf("toggle returned %d: %s", status, body)
	}
	var toggled todoPayload
	decodeEnvelope(t, body, &toggled)
	if !toggled.Completed {
		t.Fatalf("toggle did not complete the todo: %s", body)
	}

	status, _ = doJSON(t, http.MethodDelete, "/api/v1/todos/"+created.ID, nil, token)
	if status != http.StatusNoContent {
		t.Fatalf("delete returned %d", status)
	}

	status, body = doJSON(t, http.MethodGet, "/api/v1/todos/"+created.ID, nil, token)
	if status != http.StatusNotFound {
		t.Fatalf("detail after delete returned %d: %s", status, body)
	}
	env := decodeEnvelope(t, body, nil)
	if env.ErrorCode != "E404T001" {
		t.Fatalf("expected error code E404T001, got %q", env.ErrorCode)
	}
}

func TestTodoRequiresAuthentication(t *testing.T) {
	status, body := doJSON(t, http.MethodPost, "/api/v1/todos", map[string]any{"title": "x"}, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", status, body)
	}
	env := decodeEnvelope(t, body, nil)
	if env.ErrorCode == "" {
		t.Fatalf("expected an error code: %s", body)
	}
}

func TestTodoValidation(t *testing.T) {
	_, token := registerAndLogin(t)

	status, body := doJSON(t, http.MethodPost, "/api/v1/todos", map[string]any{
		"title": "",
	}, token)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", status, body)
	}

	status, body = doJSON(t, http.MethodPost, "/api/v1/todos", map[string]any{
		"title":    "priority out of range",
		"priority": 9,
	}, token)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", status, body)
	}
}
