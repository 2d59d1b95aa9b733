package api

type UnlockRequest struct {
	Passphrase string `json:"passphrase"`
}

// UnlockResponse carries the bearer token for FinanceService calls.
type UnlockResponse struct {
	Token string `json:"token"`

	// ExpiresAt is in Unix milliseconds.
	ExpiresAt int64 `json:"expiresAt"`
}
