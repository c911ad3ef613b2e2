package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("test-secret")
	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	// 1. Register user
	resp := performRequest(r, http.MethodPost, "/register", jsonBody(t, map[string]string{
		"username":  "user" + suffix,
		"firstName": "User",
		"password":  "pass123",
		"email":     "user" + suffix + "@example.com",
		"phone":     "555" + suffix,
	}), "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// Missing mandatory fields are named in order
	resp = performRequest(r, http.MethodPost, "/register", jsonBody(t, map[string]string{
		"username": "x" + suffix,
	}), "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("partial register status=%d, want 400", resp.Code)
	}

	// 2. Login
	resp = performRequest(r, http.MethodPost, "/login", jsonBody(t, map[string]string{
		"username": "user" + suffix,
		"password": "pass123",
	}), "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	// 3. Create a budget for the current month
	today := time.Now().Format("2006-01-02")
	resp = performRequest(r, http.MethodPost, "/budgets", jsonBody(t, map[string]any{
		"amount": 500, "date": today,
	}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create budget failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// Same period again conflicts
	resp = performRequest(r, http.MethodPost, "/budgets", jsonBody(t, map[string]any{
		"amount": 900, "date": today,
	}), token)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate budget status=%d, want 409", resp.Code)
	}

	// 4. Create a category within the ceiling
	resp = performRequest(r, http.MethodPost, "/categories", jsonBody(t, map[string]any{
		"name": "groceries", "categoryBudget": 450, "color": "#00ff00", "isDark": false,
	}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create category failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var category map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &category)
	categoryID, _ := category["id"].(string)
	if categoryID == "" {
		t.Fatalf("missing category id in response: %+v", category)
	}

	// One more that would overshoot the budget
	resp = performRequest(r, http.MethodPost, "/categories", jsonBody(t, map[string]any{
		"name": "travel", "categoryBudget": 60, "color": "#0000ff", "isDark": true,
	}), token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("over-ceiling category status=%d, want 400", resp.Code)
	}

	// 5. Add an expense
	resp = performRequest(r, http.MethodPost, "/expenses", jsonBody(t, map[string]any{
		"categoryId": categoryID, "name": "milk", "description": "weekly", "amount": 12,
	}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("add expense failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 6. List expenses for the current period
	resp = performRequest(r, http.MethodGet, "/expenses", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("list expenses failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 7. Category spend reflects the increment
	resp = performRequest(r, http.MethodGet, "/expenses/categories", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("category spend failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var spend []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &spend)
	if len(spend) != 1 {
		t.Fatalf("category spend rows = %d, want 1", len(spend))
	}

	// 8. Monthly reports
	resp = performRequest(r, http.MethodGet, "/reports", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("reports failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 9. Budgets list with a partial range filter fails naming the gap
	resp = performRequest(r, http.MethodGet, "/budgets?startMonth=1&startYear=2024", nil, token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("partial range filter status=%d, want 400", resp.Code)
	}

	// 10. Group create and cascading delete
	resp = performRequest(r, http.MethodPost, "/groups", jsonBody(t, map[string]any{
		"name": "trip " + suffix, "members": []string{},
	}), token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create group failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var group map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &group)
	groupID, _ := group["id"].(string)

	resp = performRequest(r, http.MethodGet, "/groups/"+groupID, nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("group details failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	resp = performRequest(r, http.MethodDelete, "/groups/"+groupID, nil, token)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete group failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 11. Ping
	resp = performRequest(r, http.MethodGet, "/ping", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("ping failed status=%d", resp.Code)
	}
}
