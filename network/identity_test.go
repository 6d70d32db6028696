package network

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestResolveUserID(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		token  string
		want   string
		source IdentitySource
	}{
		{"explicit id wins", "fox-1", signed(t, jwt.MapClaims{"sub": "other"}), "fox-1", IdentityFlag},
		{"sub claim", "", signed(t, jwt.MapClaims{"sub": "fox-2"}), "fox-2", IdentityToken},
		{"user_id claim", "", signed(t, jwt.MapClaims{"user_id": "fox-3"}), "fox-3", IdentityToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src := ResolveUserID(tt.userID, tt.token)
			if got != tt.want || src != tt.source {
				t.Errorf("ResolveUserID = (%q, %s), want (%q, %s)", got, src, tt.want, tt.source)
			}
		})
	}
}

func TestResolveUserIDGuest(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", signed(t, jwt.MapClaims{"role": "player"})} {
		id, src := ResolveUserID("", token)
		if src != IdentityGuest {
			t.Errorf("token %q: source %s, want guest", token, src)
		}
		if _, err := uuid.Parse(strings.TrimPrefix(id, "guest-")); err != nil {
			t.Errorf("guest id %q is not a uuid: %v", id, err)
		}
	}

	a, _ := ResolveUserID("", "")
	b, _ := ResolveUserID("", "")
	if a == b {
		t.Error("guest ids should be unique")
	}
}
