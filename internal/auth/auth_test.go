package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPassphraseGate(t *testing.T) {
	gate, err := NewPassphraseGate("1234")
	if err != nil {
		t.Fatalf("NewPassphraseGate failed: %v", err)
	}

	tests := []struct {
		name       string
		credential string
		wantErr    error
	}{
		{"correct", "1234", nil},
		{"wrong digits", "4321", ErrWrongPassphrase},
		{"empty", "", ErrWrongPassphrase},
		{"prefix", "123", ErrWrongPassphrase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Unlock(context.Background(), tt.credential)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unlock(%q) = %v, want %v", tt.credential, err, tt.wantErr)
			}
		})
	}
}

func TestNewPassphraseGate_RejectsBadFormat(t *testing.T) {
	for _, p := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		if _, err := NewPassphraseGate(p); !errors.Is(err, ErrInvalidPassphrase) {
			t.Errorf("NewPassphraseGate(%q) = %v, want ErrInvalidPassphrase", p, err)
		}
	}
}

func TestSessionManager(t *testing.T) {
	m, err := NewEphemeralSessionManager(time.Hour)
	if err != nil {
		t.Fatalf("NewEphemeralSessionManager failed: %v", err)
	}

	token, expiresAt, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("Expected expiry in the future, got %v", expiresAt)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Scope != FinanceScope || claims.ID == "" {
		t.Errorf("Unexpected claims %+v", claims)
	}

	t.Run("other process secret", func(t *testing.T) {
		other, _ := NewEphemeralSessionManager(time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestSessionManager_Expiry(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"), time.Minute)
	start := time.Now()
	m.now = func() time.Time { return start }

	token, _, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected expired token to be rejected, got %v", err)
	}
}
