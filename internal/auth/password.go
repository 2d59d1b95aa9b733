package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PassphraseLength is the number of digits of the finance passphrase.
const PassphraseLength = 4

var (
	ErrWrongPassphrase   = errors.New("wrong passphrase")
	ErrInvalidPassphrase = fmt.Errorf("passphrase must be exactly %d digits", PassphraseLength)
)

// Ensure PassphraseGate implements Gate
var _ Gate = (*PassphraseGate)(nil)

// PassphraseGate implements Gate with a bcrypt hash of a numeric passphrase.
type PassphraseGate struct {
	hash []byte
}

// NewPassphraseGate hashes the configured passphrase.
func NewPassphraseGate(passphrase string) (*PassphraseGate, error) {
	g := &PassphraseGate{}
	if err := g.ValidateCredential(passphrase); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passphrase: %w", err)
	}
	g.hash = hash
	return g, nil
}

// ValidateCredential checks that the credential is PassphraseLength digits.
func (g *PassphraseGate) ValidateCredential(credential string) error {
	if len(credential) != PassphraseLength {
		return ErrInvalidPassphrase
	}
	for _, r := range credential {
		if r < '0' || r > '9' {
			return ErrInvalidPassphrase
		}
	}
	return nil
}

// Unlock compares the credential against the stored hash.
func (g *PassphraseGate) Unlock(_ context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(credential)); err != nil {
		return ErrWrongPassphrase
	}
	return nil
}
