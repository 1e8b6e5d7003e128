package entity

import "time"

// Session is the server-side marker binding a client context to an
// authenticated identity. It is deliberately only a flag-and-name pair plus
// bookkeeping timestamps; there is no multi-session tracking per subject.
//
// State machine: Anonymous --Issue(u)--> Authenticated(u);
// Authenticated(u) --Destroy--> Anonymous;
// Authenticated(u) --Issue(u2)--> Authenticated(u2) (re-issue overwrites).
type Session struct {
	ID              string    // Opaque session identifier handed to the client.
	SubjectUsername string    // Identity bound to the session.
	Authenticated   bool      // True for the lifetime of the session.
	IssuedAt        time.Time // When this session was issued.
	ExpiresAt       time.Time // When the underlying session mechanism discards it.
}

// Expired reports whether the session has outlived its TTL at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
