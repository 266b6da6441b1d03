// internal/api/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donorlink-api-server/config"
	"donorlink-api-server/internal/api/routes"
	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/store/memstore"

	"github.com/gin-gonic/gin"
)

type testEnv struct {
	router    *gin.Engine
	users     *memstore.UserStore
	donations *memstore.DonationStore
	tokens    *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memstore.NewUserStore()
	donations := memstore.NewDonationStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	cfg := config.Config{CORS: config.CORSConfig{Origin: "http://localhost:3000"}}

	return &testEnv{
		router:    routes.SetupRouter(cfg, tokens, users, donations),
		users:     users,
		donations: donations,
		tokens:    tokens,
	}
}

// do performs a request against the router. A non-empty token is sent as a
// bearer credential; a non-nil body is JSON-encoded.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reader := bytes.NewBuffer(nil)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns its token and id.
func (e *testEnv) register(t *testing.T, payload map[string]interface{}) (token, userID string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/register", "", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to register %v. Status: %d, Response: %s", payload["email"], w.Code, w.Body.String())
	}

	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode register response: %v", err)
	}
	if resp.Token == "" || resp.UserID == "" {
		t.Fatalf("Register response missing token or userId: %s", w.Body.String())
	}
	return resp.Token, resp.UserID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func donorPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"fullName":  "Test Donor",
		"email":     email,
		"password":  "password123",
		"role":      "donor",
		"bloodType": "O+",
		"organs":    "kidney",
	}
}

func recipientPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Test Recipient",
		"email":           email,
		"password":        "password123",
		"role":            "recipient",
		"neededBloodType": "O+",
	}
}

func adminPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"fullName": "Test Admin",
		"email":    email,
		"password": "password123",
		"role":     "admin",
	}
}
