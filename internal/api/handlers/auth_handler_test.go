// internal/api/handlers/auth_handler_test.go
package handlers_test

import (
	"context"
	"net/http"
	"testing"
)

func TestRegisterIssuesMatchingToken(t *testing.T) {
	env := newTestEnv(t)

	token, userID := env.register(t, donorPayload("donor@example.com"))

	claims, err := env.tokens.Parse(token)
	if err != nil {
		t.Fatalf("Issued token does not parse: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("Token userId = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "donor" {
		t.Errorf("Token role = %q, want donor", claims.Role)
	}

	stored, err := env.users.GetByEmail(context.Background(), "donor@example.com")
	if err != nil {
		t.Fatalf("Registered user not in store: %v", err)
	}
	if stored.Password == "password123" {
		t.Error("Password stored in plaintext")
	}
	if stored.ID.Hex() != userID {
		t.Errorf("Created record id = %q, want %q", stored.ID.Hex(), userID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, donorPayload("dup@example.com"))

	w := env.do(t, http.MethodPost, "/api/auth/register", "", donorPayload("dup@example.com"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Duplicate register status = %d, want 400", w.Code)
	}

	donors, err := env.users.ListByRole(context.Background(), "donor")
	if err != nil {
		t.Fatal(err)
	}
	if len(donors) != 1 {
		t.Errorf("Duplicate register created a second record: %d donors", len(donors))
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	for name, payload := range map[string]map[string]interface{}{
		"missing role":  {"fullName": "X", "email": "x@example.com", "password": "password123"},
		"bad role":      {"fullName": "X", "email": "x@example.com", "password": "password123", "role": "superuser"},
		"missing email": {"fullName": "X", "password": "password123", "role": "donor"},
		"bad email":     {"fullName": "X", "email": "not-an-email", "password": "password123", "role": "donor"},
	} {
		t.Run(name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/auth/register", "", payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRegisterDropsMismatchedRoleFields(t *testing.T) {
	env := newTestEnv(t)

	payload := recipientPayload("mixed@example.com")
	payload["bloodType"] = "AB-"
	payload["organs"] = "liver"
	env.register(t, payload)

	stored, err := env.users.GetByEmail(context.Background(), "mixed@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Donor != nil {
		t.Errorf("Recipient carries donor fields: %+v", stored.Donor)
	}
	if stored.Recipient == nil || stored.Recipient.NeededBloodType != "O+" {
		t.Errorf("Recipient fields missing: %+v", stored.Recipient)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, donorPayload("login@example.com"))

	t.Run("unknown email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@example.com", "password": "password123",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want 404", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "login@example.com", "password": "wrongpassword",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want 400", w.Code)
		}
		if body := decodeBody(t, w); body["success"] != false {
			t.Error("Failed login reported success")
		}
	})

	t.Run("correct credentials", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "login@example.com", "password": "password123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200. Response: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["token"] == "" || body["role"] != "donor" {
			t.Errorf("Unexpected login response: %v", body)
		}
	})
}
