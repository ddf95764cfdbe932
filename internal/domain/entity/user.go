// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the storefront. It is persisted inside
// the "users" collection and never carries a session fingerprint; the
// fingerprint lives only on the denormalized Session copy.
type User struct {
	ID               string       `json:"id"`                         // Opaque identifier generated at registration.
	Email            string       `json:"email"`                      // Unique login identifier, case-sensitive as stored.
	PasswordHash     string       `json:"passwordHash,omitempty"`     // Absent for social-login accounts.
	Name             string       `json:"name"`                       // Display name.
	Role             Role         `json:"role"`                       // CUSTOMER, SELLER or ADMIN.
	CreatedAt        time.Time    `json:"createdAt"`                  // Timestamp of account creation.
	Provider         AuthProvider `json:"provider"`                   // How the account was created: local, google or facebook.
	Avatar           string       `json:"avatar,omitempty"`           // Optional avatar URL from a social provider.
	TwoFactorEnabled bool         `json:"twoFactorEnabled,omitempty"` // Declared but not enforced anywhere.
}

// AuthProvider identifies the origin of an account.
type AuthProvider string

const (
	// ProviderLocal marks accounts created through email/password registration.
	ProviderLocal AuthProvider = "local"
	// ProviderGoogle marks accounts created through Google social login.
	ProviderGoogle AuthProvider = "google"
	// ProviderFacebook marks accounts created through Facebook social login.
	ProviderFacebook AuthProvider = "facebook"
)

// IsValid checks if the AuthProvider is a known value.
func (p AuthProvider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderFacebook:
		return true
	default:
		return false
	}
}

// IsSocial reports whether the provider is an external identity provider.
func (p AuthProvider) IsSocial() bool {
	return p == ProviderGoogle || p == ProviderFacebook
}
