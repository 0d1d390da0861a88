package models

import "time"

// Session is the server-side record behind a session cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Principal is the authenticated user associated with the current request.
// The zero value means "anonymous".
type Principal struct {
	UserID    int64
	SessionID string
}

// IsAuthenticated reports whether p identifies a user.
func (p Principal) IsAuthenticated() bool {
	return p.UserID > 0
}
