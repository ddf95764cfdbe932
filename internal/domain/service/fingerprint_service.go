// Package service defines interfaces for core, stateless domain logic.
package service

// FingerprintService issues the opaque session token written into the active
// session record. A fresh fingerprint is generated on every login or social
// login; validity is defined purely by presence, never by inspecting the
// token's contents.
type FingerprintService interface {
	// New returns a fresh, non-empty opaque token.
	New() string
}
