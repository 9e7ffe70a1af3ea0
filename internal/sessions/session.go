package sessions

import "time"

// Session is one logged-in browser session, keyed by an opaque token
// carried in a cookie.
type Session struct {
	Token     string    `json:"token"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
