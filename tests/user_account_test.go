package tests

import (
	"net/http"
	"testing"
)

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func TestUserRegisterDuplicate(t *testing.T) {
	username, _ := registerAndLogin(t)

	status, body := doJSON(t, http.MethodPost, "/api/v1/users", map[string]any{
		"username": username,
		"password": "secret123",
	}, "")
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", status, body)
	}
	env := decodeEnvelope(t, body, nil)
	if env.ErrorCode != "E409U001" {
		t.Fatalf("expected error code E409U001, got %q", env.ErrorCode)
	}
}

func TestUserLoginWrongPassword(t *testing.T) {
	username, _ := registerAndLogin(t)

	status, body := doJSON(t, http.MethodPost, "/api/v1/users/login", map[string]any{
		"username": username,
		"password": "not-the-password",
	}, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", status, body)
	}
}

func TestUserMeAndUpdate(t *testing.T) {
	username, token := registerAndLogin(t)

	var me userPayload
	status, body := doJSON(t, http.MethodGet, "/api/v1/users/me", nil, token)
	if status != http.StatusOK {
		t.Fatalf("me returned %d: %s", status, body)
	}
	decodeEnvelope(t, body, &me)
	if me.Username != username {
		t.Fatalf("me returned wrong user: %s", body)
	}

	newEmail := username + "+new@example.com"
	status, body = doJSON(t, http.MethodPatch, "/api/v1/users/"+me.ID, map[string]any{
		"email": newEmail,
	}, token)
	if status != http.StatusOK {
		t.Fatalf("update returned %d: %s", status, body)
	}
	var updated userPayload
	decodeEnvelope(t, body, &updated)
	if updated.Email != newEmail {
		t.Fatalf("email not updated: %s", body)
	}

	status, body = doJSON(t, http.MethodPatch, "/api/v1/users/"+me.ID, map[string]any{
		"username": "x",
	}, token)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for short username, got %d: %s", status, body)
	}
}

func TestUserPasswordChangeInvalidatesOldPassword(t *testing.T) {
	username, token := registerAndLogin(t)

	var me userPayload
	status, body := doJSON(t, http.MethodGet, "/api/v1/users/me", nil, token)
	if status != http.StatusOK {
		t.Fatalf("me returned %d: %s", status, body)
	}
	decodeEnvelope(t, body, &me)

	status, body = doJSON(t, http.MethodPatch, "/api/v1/users/"+me.ID, map[string]any{
		"password": "rotated456",
	}, token)
	if status != http.StatusOK {
		t.Fatalf("password update returned %d: %s", status, body)
	}

	status, _ = doJSON(t, http.MethodPost, "/api/v1/users/login", map[string]any{
		"username": username,
		"password": "secret123",
	}, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("old password still valid, got %d", status)
	}

	status, _ = doJSON(t, http.MethodPost, "/api/v1/users/login", map[string]any{
		"username": username,
		"password": "rotated456",
	}, "")
	if status != http.StatusOK {
		t.Fatalf("new password rejected, got %d", status)
	}
}

func TestUserDelete(t *testing.T) {
	_, token := registerAndLogin(t)

	var me userPayload
	status, body := doJSON(t, http.MethodGet, "/api/v1/users/me", nil, token)
	if status != http.StatusOK {
		t.Fatalf("me returned %d: %s", status, body)
	}
	decodeEnvelope(t, body, &me)

	status, _ = doJSON(t, http.MethodDelete, "/api/v1/users/"+me.ID, nil, token)
	if status != http.StatusNoContent {
		t.Fatalf("delete returned %d", status)
	}

	status, _ = doJSON(t, http.MethodGet, "/api/v1/users/me", nil, token)
	if status != http.StatusUnauthorized {
		t.Fatalf("token for deleted account still works, got %d", status)
	}
}
