package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emporia/globals"

	"github.com/julienschmidt/httprouter"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user1234abcd0000", "alice@example.com", []string{"user"}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user1234abcd0000" {
		t.Errorf("unexpected user id %q", claims.UserID)
	}
	if claims.Username != "alice@example.com" {
		t.Errorf("unexpected username %q", claims.Username)
	}
	if len(claims.Role) != 1 || claims.Role[0] != "user" {
		t.Errorf("unexpected roles %v", claims.Role)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "Bearer ", "Bearer not-a-token"} {
		if _, err := ValidateJWT(bad); err == nil {
			t.Errorf("ValidateJWT(%q) should fail", bad)
		}
	}
}

func TestValidateJWTRequiresBearerPrefix(t *testing.T) {
	token, err := GenerateToken("user1234abcd0000", "alice@example.com", []string{"user"}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	for _, bad := range []string{token, "Token " + token, "bearer " + token} {
		if _, err := ValidateJWT(bad); err == nil {
			t.Errorf("ValidateJWT(%q) should reject a value without the Bearer prefix", bad)
		}
	}
}

func TestAuthenticateSetsContext(t *testing.T) {
	token, err := GenerateToken("user1234abcd0000", "alice@example.com", []string{"user"}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		if got, _ := r.Context().Value(globals.UserIDKey).(string); got != "user1234abcd0000" {
			t.Errorf("unexpected user id in context: %q", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler(httptest.NewRecorder(), req, nil)
	if !called {
		t.Fatal("handler was not invoked for a valid token")
	}

	// A bare token without the prefix must not reach the handler.
	called = false
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	handler(w, req, nil)
	if called {
		t.Fatal("handler ran for a malformed Authorization header")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	token, err := GenerateToken("user1234abcd0000", "alice@example.com", []string{"user"}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateJWT("Bearer " + token); err == nil {
		t.Error("expired token should fail validation")
	}
}
