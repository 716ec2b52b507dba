package entity

import "time"

// Session is a server-side login session keyed by an opaque id
type Session struct {
	SID    string
	UserID string
	Expire time.Time
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.Expire)
}
