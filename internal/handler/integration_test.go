package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestIntegration_RegisterLoginTaskLifecycle walks the full API surface
// over a real server: register, login, then create, read, list, update,
// and delete a task with the issued bearer token.
func TestIntegration_RegisterLoginTaskLifecycle(t *testing.T) {
	env := newTestEnv(t)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	client := srv.Client()

	do := func(method, path, body, token string) (*http.Response, map[string]any) {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var decoded map[string]any
		if len(raw) > 0 && raw[0] == '{' {
			if err := json.Unmarshal(raw, &decoded); err != nil {
				t.Fatalf("decode body %q: %v", raw, err)
			}
		}
		return resp, decoded
	}

	// 1. Register a new user.
	resp, body := do(http.MethodPost, "/auth/register", `{"username":"alice","password":"pw1"}`, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	if body["message"] != "User registered successfully" {
		t.Fatalf("register: unexpected message %v", body["message"])
	}

	// 2. Login and capture the token.
	resp, body = do(http.MethodPost, "/auth/login", `{"username":"alice","password":"pw1"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatal("login: expected an access_token")
	}

	// 3. The token gates the task endpoints.
	resp, _ = do(http.MethodGet, "/tasks", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: expected 401, got %d", resp.StatusCode)
	}

	// 4. Create a task.
	resp, body = do(http.MethodPost, "/tasks", `{"title":"t"}`, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	taskID, _ := body["id"].(string)
	if taskID == "" {
		t.Fatal("create: expected a task id")
	}
	if body["status"] != "PENDING" {
		t.Fatalf("create: expected status PENDING, got %v", body["status"])
	}

	// 5. Fetch it back by id.
	resp, body = do(http.MethodGet, "/tasks/"+taskID, "", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	if body["id"] != taskID || body["title"] != "t" {
		t.Fatalf("get: unexpected task %v", body)
	}

	// 6. Update its status.
	resp, body = do(http.MethodPut, "/tasks/"+taskID, `{"status":"IN_PROGRESS"}`, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "IN_PROGRESS" || body["title"] != "t" {
		t.Fatalf("update: unexpected task %v", body)
	}

	// 7. Delete it.
	resp, body = do(http.MethodDelete, "/tasks/"+taskID, "", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "Task deleted successfully" {
		t.Fatalf("delete: unexpected message %v", body["message"])
	}

	// 8. The task is gone.
	resp, _ = do(http.MethodGet, "/tasks/"+taskID, "", token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}
