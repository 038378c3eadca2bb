package domain

import "time"

// SessionEventKind names a session store transition.
type SessionEventKind string

const (
	EventLoginSucceeded SessionEventKind = "login_succeeded"
	EventLoginFailed    SessionEventKind = "login_failed"
	EventLogout         SessionEventKind = "logout"
)

// SessionEvent records a login attempt or logout for the audit trail.
type SessionEvent struct {
	Kind   SessionEventKind
	Email  string
	UserID string // empty on failed logins
	Role   Role   // empty on failed logins
	At     time.Time
}
