package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baechuer/user-account-service/internal/application/account"
	"github.com/baechuer/user-account-service/internal/infrastructure/memory"
	"github.com/baechuer/user-account-service/internal/infrastructure/security"
	"github.com/baechuer/user-account-service/internal/transport/http/middleware"
	"github.com/baechuer/user-account-service/internal/transport/http/response"
	"github.com/baechuer/user-account-service/internal/transport/http/router"
)

const testJWTSecret = "handler-test-secret"

// newTestHandler wires the full HTTP stack over the in-memory repo:
// real bcrypt (low cost to keep tests fast), real JWT signing, real
// router. Only the database is substituted.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewUserRepo()
	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner(testJWTSecret, "user-account-service", 0)
	svc := account.NewService(repo, hasher, signer)

	h, err := router.New(router.Deps{
		Health:      NewHealthHandler(),
		Account:     NewAccountHandler(svc),
		RequestIDMW: middleware.RequestID,
		MetricsMW:   func(next http.Handler) http.Handler { return next },
		AuthMW:      middleware.Auth(signer, response.WriteError),
	})
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}
	return h
}

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// doReq performs a request against h. A non-empty token is sent as a
// Bearer Authorization header.
func doReq(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		rd = mustJSONBody(t, body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// newRawRequest builds a request with a literal (possibly malformed)
// body, bypassing JSON marshalling.
func newRawRequest(t *testing.T, method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

type publicUserBody struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

type messageBody struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    *publicUserBody `json:"user"`
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) messageBody {
	t.Helper()

	var out messageBody
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v; body=%s", err, rec.Body.String())
	}
	return out
}

// registerUser registers through the HTTP surface and returns the token
// from the response.
func registerUser(t *testing.T, h http.Handler, userName, email, password string) string {
	t.Helper()

	rec := doReq(t, h, http.MethodPost, "/users", "", map[string]string{
		"user_name": userName,
		"email":     email,
		"password":  password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status = %d, body=%s", userName, rec.Code, rec.Body.String())
	}

	body := decodeMessage(t, rec)
	if body.Token == "" {
		t.Fatalf("register %s: expected token in response", userName)
	}
	return body.Token
}

// loginUser logs in and returns the session token and the user's id.
func loginUser(t *testing.T, h http.Handler, username, password string) (token, userID string) {
	t.Helper()

	rec := doReq(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body=%s", username, rec.Code, rec.Body.String())
	}

	body := decodeMessage(t, rec)
	if body.Message != "Login successful" {
		t.Fatalf("login %s: message = %q, body=%s", username, body.Message, rec.Body.String())
	}
	if body.User == nil {
		t.Fatalf("login %s: expected user in response", username)
	}
	return body.Token, body.User.ID
}
