// Package auth implements the finance gate: a shared passphrase that
// unlocks short-lived session tokens.
//
// The gate is a UI guard for a single trusted group, not a security
// boundary. Nothing is persisted: the passphrase hash and the token
// signing secret live only in process memory.
package auth

import "context"

// Gate defines the interface for unlocking the finance area.
// This abstraction allows swapping the passphrase check for another method
// without changing the service layer code.
type Gate interface {
	// Unlock verifies the credential. It returns ErrWrongPassphrase on mismatch.
	Unlock(ctx context.Context, credential string) error

	// ValidateCredential checks the credential's format.
	ValidateCredential(credential string) error
}
