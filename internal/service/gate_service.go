package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/internal/auth"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// GateService implements the GateService RPC interface.
type GateService struct {
	gate     auth.Gate
	sessions *auth.SessionManager
	logger   *slog.Logger
}

var _ apiconnect.GateServiceHandler = (*GateService)(nil)

// NewGateService creates a new finance gate service.
func NewGateService(gate auth.Gate, sessions *auth.SessionManager, logger *slog.Logger) *GateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GateService{
		gate:     gate,
		sessions: sessions,
		logger:   logger,
	}
}

// Unlock checks the passphrase and returns a session token for the finance area.
func (s *GateService) Unlock(ctx context.Context, req *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error) {
	s.logger.Info("Unlock request")

	if err := s.gate.ValidateCredential(req.Msg.Passphrase); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := s.gate.Unlock(ctx, req.Msg.Passphrase); err != nil {
		s.logger.Warn("Unlock failed", "error", err)
		if errors.Is(err, auth.ErrWrongPassphrase) {
			return nil, connect.NewError(connect.CodePermissionDenied, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, expiresAt, err := s.sessions.Generate()
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Finance area unlocked", "expires_at", expiresAt)
	return connect.NewResponse(&api.UnlockResponse{
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	}), nil
}
