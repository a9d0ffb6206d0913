package transfer

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the signed-in profile inside the session cookie; there
// is no local user storage to look it up from.
type CustomClaims struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}
