// Package scheduler runs the periodic jobs of the server.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mmynk/futmanager/internal/calculator"
	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/notify"
)

// ReportFunc computes the finance report of one month.
type ReportFunc func(ctx context.Context, month models.YearMonth) (calculator.MonthlyReport, error)

// Config sets when the monthly summary goes out.
type Config struct {
	// Day of the month (1-28) and hour (0-23) in Location.
	Day      int
	Hour     int
	Location *time.Location

	// Timeout bounds one run of a job.
	Timeout time.Duration
}

type Scheduler struct {
	s        gocron.Scheduler
	cfg      Config
	report   ReportFunc
	notifier notify.Notifier
	now      func() time.Time
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(cfg Config, report ReportFunc, notifier notify.Notifier) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Day < 1 || cfg.Day > 28 {
		return nil, fmt.Errorf("report day must be between 1 and 28, got %d", cfg.Day)
	}
	if cfg.Hour < 0 || cfg.Hour > 23 {
		return nil, fmt.Errorf("report hour must be between 0 and 23, got %d", cfg.Hour)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(cfg.Location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		cfg:      cfg,
		report:   report,
		notifier: notifier,
		now:      time.Now,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	// Monthly summary of the month that just ended
	_, err := s.s.NewJob(
		gocron.MonthlyJob(1, gocron.NewDaysOfTheMonth(s.cfg.Day), gocron.NewAtTimes(gocron.NewAtTime(uint(s.cfg.Hour), 0, 0))),
		gocron.NewTask(s.sendMonthlySummary),
		gocron.WithName("monthly-summary"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create monthly summary job: %w", err)
	}

	s.s.Start()
	slog.Info("Scheduler started", "report_day", s.cfg.Day, "report_hour", s.cfg.Hour, "location", s.cfg.Location.String())
	return nil
}

// Stop shuts the scheduler down, waiting for running jobs.
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendMonthlySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	if err := s.SendMonthlySummary(ctx); err != nil {
		slog.Error("Failed to send monthly summary", "error", err)
	}
}

// SendMonthlySummary posts the report of the month before the current one.
func (s *Scheduler) SendMonthlySummary(ctx context.Context) error {
	month := models.YearMonthOf(s.now().UnixMilli(), s.cfg.Location).Prev()

	report, err := s.report(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to compute report for %s: %w", month, err)
	}
	if err := s.notifier.Send(ctx, notify.FormatMonthlySummary(report)); err != nil {
		return err
	}
	slog.Info("Monthly summary sent", "month", month.String())
	return nil
}
