package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/internal/calculator"
	"github.com/mmynk/futmanager/internal/middleware"
	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// FinanceService implements the Connect FinanceService. Every RPC is
// expected to be behind middleware.RequireSession.
type FinanceService struct {
	store storage.Store
	loc   *time.Location
	now   func() time.Time
}

var _ apiconnect.FinanceServiceHandler = (*FinanceService)(nil)

// NewFinanceService creates a new FinanceService
func NewFinanceService(store storage.Store, loc *time.Location) *FinanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &FinanceService{store: store, loc: loc, now: time.Now}
}

// MonthlyReport loads every ledger and computes the report for ym.
func (s *FinanceService) MonthlyReport(ctx context.Context, ym models.YearMonth) (calculator.MonthlyReport, error) {
	in := calculator.FinanceInput{Month: ym, Location: s.loc}
	var err error

	if in.Players, err = s.store.LoadPlayers(ctx); err != nil {
		return calculator.MonthlyReport{}, fmt.Errorf("failed to load players: %w", err)
	}
	if in.History, err = s.store.LoadHistory(ctx); err != nil {
		return calculator.MonthlyReport{}, fmt.Errorf("failed to load history: %w", err)
	}
	if in.Events, err = s.store.LoadEvents(ctx); err != nil {
		return calculator.MonthlyReport{}, fmt.Errorf("failed to load events: %w", err)
	}
	if in.Settings, err = s.store.LoadSettings(ctx); err != nil {
		return calculator.MonthlyReport{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if in.Payments, err = s.store.LoadPayments(ctx); err != nil {
		return calculator.MonthlyReport{}, fmt.Errorf("failed to load payments: %w", err)
	}

	return calculator.CalculateMonthlyReport(in), nil
}

// GetMonthlyReport returns the obligations and totals of one month.
func (s *FinanceService) GetMonthlyReport(ctx context.Context, req *connect.Request[api.GetMonthlyReportRequest]) (*connect.Response[api.GetMonthlyReportResponse], error) {
	if req.Msg.Year == 0 && req.Msg.Month != 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("month %d given without a year", req.Msg.Month))
	}
	ym := models.NewYearMonth(req.Msg.Year, time.Month(req.Msg.Month))
	if req.Msg.Year == 0 {
		ym = models.YearMonthOf(s.now().UnixMilli(), s.loc)
	}
	slog.Info("GetMonthlyReport request received", "month", ym.String(), "session_id", middleware.GetSessionID(ctx))

	if !ym.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("month must be between 1 and 12, got %d", req.Msg.Month))
	}

	report, err := s.MonthlyReport(ctx, ym)
	if err != nil {
		return nil, internalError("Failed to compute monthly report", err, "month", ym.String())
	}

	slog.Info("Monthly report computed", "month", ym.String(), "expected", report.TotalExpected, "collected", report.TotalCollected)
	return connect.NewResponse(&api.GetMonthlyReportResponse{Report: toAPIReport(report)}), nil
}

// TogglePayment flips one obligation between paid and unpaid.
func (s *FinanceService) TogglePayment(ctx context.Context, req *connect.Request[api.TogglePaymentRequest]) (*connect.Response[api.TogglePaymentResponse], error) {
	key := req.Msg.Key
	slog.Info("TogglePayment request received", "key", key, "session_id", middleware.GetSessionID(ctx))

	if !models.ValidPaymentKey(key) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("malformed payment key %q", key))
	}

	paid, err := s.store.TogglePayment(ctx, key)
	if err != nil {
		return nil, internalError("Failed to toggle payment", err, "key", key)
	}

	slog.Info("Payment toggled", "key", key, "paid", paid, "session_id", middleware.GetSessionID(ctx))
	return connect.NewResponse(&api.TogglePaymentResponse{Key: key, Paid: paid}), nil
}

// GetSettings returns the pricing, or the defaults when none were saved.
func (s *FinanceService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return nil, internalError("Failed to load settings", err)
	}
	return connect.NewResponse(&api.GetSettingsResponse{Settings: toAPISettings(settings)}), nil
}

// UpdateSettings replaces the pricing.
func (s *FinanceService) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	if req.Msg.Settings == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("settings are required"))
	}
	settings := fromAPISettings(req.Msg.Settings)
	slog.Info("UpdateSettings request received",
		"monthly_fee", settings.MonthlyFee,
		"per_game_fee", settings.PerGameFee,
		"court_rental_cost", settings.CourtRentalCost,
		"session_id", middleware.GetSessionID(ctx),
	)

	if err := settings.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, internalError("Failed to save settings", err)
	}

	slog.Info("Settings updated")
	return connect.NewResponse(&api.UpdateSettingsResponse{Settings: toAPISettings(settings)}), nil
}
