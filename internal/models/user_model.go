package models

// Profile is the basic identity returned by the authentication provider.
// There is no local user storage; the profile travels inside the session token.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}
