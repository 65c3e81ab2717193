package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/middleware"
	"github.com/rubybellylechon/admin-api/src/router"
)

// Test helpers for handler tests

const testSecret = "handlers-test-secret-0123456789abcdef"

// newTestAPI wires repos behind the real route table and dispatcher
func newTestAPI(t *testing.T, repos Repositories, throttle *middleware.Throttle) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions, err := middleware.NewSessionManager(testSecret, 0, false)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	d := router.NewDispatcher(Routes(repos, sessions, throttle), sessions)
	engine.Any("/api/*path", d.Handle)
	engine.NoRoute(d.Handle)
	return engine
}

// doRequest sends a JSON request with optional cookies
func doRequest(engine *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// sessionCookie returns the session cookie set by a response, if any
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

// decodeJSON parses the response body into v
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response: %v: %s", err, w.Body.String())
	}
}

// assertStatusCode checks if response status code matches expected
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode int) {
	t.Helper()
	if w.Code != expectedCode {
		t.Errorf("expected status %d, got %d: %s", expectedCode, w.Code, w.Body.String())
	}
}

// assertJSONError checks if response contains expected error message
func assertJSONError(t *testing.T, w *httptest.ResponseRecorder, expectedError string) {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["error"] != expectedError {
		t.Errorf("expected error '%s', got '%v'", expectedError, response["error"])
	}
}
