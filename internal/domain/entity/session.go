// Package entity contains the core business objects of the project.
package entity

// Session is the single active login record. It is a denormalized copy of one
// User plus a freshly generated fingerprint token; the copy is never written
// back into the user collection. At most one Session exists per store
// instance.
type Session struct {
	User
	Fingerprint string `json:"fingerprint"` // Opaque token re-issued on every login.
}

// Valid reports whether the session passes its sole integrity check: a
// non-empty fingerprint. A session payload without one is treated exactly
// like an absent session.
func (s *Session) Valid() bool {
	return s != nil && s.Fingerprint != ""
}
