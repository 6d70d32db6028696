package network

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentitySource says where a user id came from.
type IdentitySource string

const (
	IdentityFlag  IdentitySource = "flag"
	IdentityToken IdentitySource = "token"
	IdentityGuest IdentitySource = "guest"
)

// ResolveUserID picks the id to join with. An explicit userID wins. Otherwise
// the sub or user_id claim of a JWT token is used; the signature is not
// checked because the server verifies the token on join. Failing both, a
// guest id is generated.
func ResolveUserID(userID, token string) (string, IdentitySource) {
	if userID != "" {
		return userID, IdentityFlag
	}
	if id := tokenSubject(token); id != "" {
		return id, IdentityToken
	}
	return "guest-" + uuid.NewString(), IdentityGuest
}

func tokenSubject(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	if id, ok := claims["user_id"].(string); ok {
		return id
	}
	return ""
}
