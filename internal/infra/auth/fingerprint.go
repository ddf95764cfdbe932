package auth

import (
	"github.com/google/uuid"

	"bazaar/internal/domain/service"
)

// uuidFingerprinter issues session fingerprints as random UUIDs. The token is
// opaque by contract; nothing anywhere inspects its contents, only its
// presence.
type uuidFingerprinter struct{}

// NewFingerprintService is the constructor for uuidFingerprinter.
func NewFingerprintService() service.FingerprintService {
	return &uuidFingerprinter{}
}

// New returns a fresh opaque token.
func (f *uuidFingerprinter) New() string {
	return uuid.NewString()
}
