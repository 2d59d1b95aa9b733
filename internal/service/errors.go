package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/internal/roster"
)

// internalError logs a storage or encoding failure and hides it behind CodeInternal.
func internalError(msg string, err error, args ...any) *connect.Error {
	slog.Error(msg, append(args, "error", err)...)
	return connect.NewError(connect.CodeInternal, errors.New(msg))
}

// rosterError maps roster package errors to Connect codes.
func rosterError(err error) *connect.Error {
	switch {
	case errors.Is(err, roster.ErrPlayerNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, roster.ErrInvalidRating),
		errors.Is(err, roster.ErrInvalidPlayer),
		errors.Is(err, roster.ErrNoSponsor):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return internalError("Roster update failed", err)
	}
}
