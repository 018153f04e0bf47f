package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// fallbackName is shown whenever the token yields no usable name.
const fallbackName = "admin"

// DisplayName extracts a username from the bearer token's payload for the
// sidebar greeting. This is a best-effort display hint only: the signature
// is never checked, nothing here throws, and the result must never feed an
// authorization decision.
func DisplayName(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallbackName
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		return name
	}
	return fallbackName
}
