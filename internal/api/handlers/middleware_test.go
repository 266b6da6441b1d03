// internal/api/handlers/middleware_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donorlink-api-server/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProtectedRouteAuthentication(t *testing.T) {
	env := newTestEnv(t)
	donorToken, _ := env.register(t, donorPayload("donor@example.com"))

	t.Run("missing header", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/donor/info", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("header without bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/donor/info", nil)
		req.Header.Set("Authorization", donorToken)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		tampered := donorToken[:len(donorToken)-2] + "xx"
		w := env.do(t, http.MethodGet, "/api/donor/info", tampered, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		// Same secret, negative lifetime: expired on arrival.
		expired := auth.NewTokenManager("test-secret", -time.Hour)
		token, err := expired.Generate(primitive.NewObjectID().Hex(), "donor")
		if err != nil {
			t.Fatal(err)
		}
		w := env.do(t, http.MethodGet, "/api/donor/info", token, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Generate(primitive.NewObjectID().Hex(), "donor")
		if err != nil {
			t.Fatal(err)
		}
		w := env.do(t, http.MethodGet, "/api/donor/info", token, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("token for vanished user", func(t *testing.T) {
		token, err := env.tokens.Generate(primitive.NewObjectID().Hex(), "donor")
		if err != nil {
			t.Fatal(err)
		}
		w := env.do(t, http.MethodGet, "/api/donor/info", token, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want 404", w.Code)
		}
	})
}

func TestRoleAuthorization(t *testing.T) {
	env := newTestEnv(t)
	donorToken, _ := env.register(t, donorPayload("donor@example.com"))
	recipientToken, _ := env.register(t, recipientPayload("recipient@example.com"))
	adminToken, _ := env.register(t, adminPayload("admin@example.com"))

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"donor on recipient route", http.MethodGet, "/api/recipient/info", donorToken, http.StatusForbidden},
		{"recipient on donor route", http.MethodGet, "/api/donor/info", recipientToken, http.StatusForbidden},
		{"admin on recipient route (no hierarchy)", http.MethodGet, "/api/recipient/donors", adminToken, http.StatusForbidden},
		{"donor on admin route", http.MethodGet, "/api/admin/users", donorToken, http.StatusForbidden},
		{"donor on own route", http.MethodGet, "/api/donor/info", donorToken, http.StatusOK},
		{"recipient on own route", http.MethodGet, "/api/recipient/info", recipientToken, http.StatusOK},
		{"admin on admin route", http.MethodGet, "/api/admin/users", adminToken, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, tc.method, tc.path, tc.token, nil)
			if w.Code != tc.want {
				t.Errorf("Status = %d, want %d. Response: %s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}
