package session

import "fmt"

// AuthError indicates rejected credentials, member or admin. The prior
// session, if any, is left untouched when this is returned.
type AuthError struct {
	Realm string // "member" or "admin"
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s authentication failed: %v", e.Realm, e.Cause)
	}
	return fmt.Sprintf("%s authentication failed", e.Realm)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// SessionExpiredError indicates a mutation was attempted without a valid
// member token. The controller has already forced a return to the logged-out
// state when this is returned.
type SessionExpiredError struct{}

func (e *SessionExpiredError) Error() string {
	return "session expired, log in again"
}

// UnreachableError indicates a read failed; the previously cached collection
// is preserved.
type UnreachableError struct {
	Cause error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Cause)
}

func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

// MutationError indicates a write was rejected; the cache was not touched.
type MutationError struct {
	Op    string
	Cause error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

func (e *MutationError) Unwrap() error {
	return e.Cause
}
