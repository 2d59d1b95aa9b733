package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/futmanager/internal/calculator"
	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/roster"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// EventService implements the Connect EventService
type EventService struct {
	store storage.Store
	loc   *time.Location
	now   func() time.Time
}

var _ apiconnect.EventServiceHandler = (*EventService)(nil)

// NewEventService creates a new EventService
func NewEventService(store storage.Store, loc *time.Location) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{store: store, loc: loc, now: time.Now}
}

// CreateEvent records a barbecue and its per-head cost.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	msg := req.Msg
	slog.Info("CreateEvent request received", "description", msg.Description, "participants", len(msg.Participants))

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}
	seen := make(map[string]bool, len(msg.Participants))
	for _, id := range msg.Participants {
		if _, ok := roster.Find(players, id); !ok {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown participant %q", id))
		}
		if seen[id] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("participant %q listed twice", id))
		}
		seen[id] = true
	}

	costs := fromAPICosts(msg.Costs)
	draw := 0.0
	if msg.UseCashBalance {
		draw = msg.CashBalanceUsed
	}
	perPerson, err := calculator.CalculateEventCost(costs, len(msg.Participants), msg.UseCashBalance, draw)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	ts := msg.Timestamp
	if ts == 0 {
		ts = s.now().UnixMilli()
	}
	event := models.BarbecueEvent{
		ID:                 uuid.New().String(),
		DateString:         dateString(ts, s.loc),
		Timestamp:          ts,
		Description:        strings.TrimSpace(msg.Description),
		Participants:       append([]string{}, msg.Participants...),
		Costs:              costs,
		UseCashBalance:     msg.UseCashBalance,
		CashBalanceUsed:    draw,
		FinalCostPerPerson: perPerson,
	}

	_, err = s.store.UpdateEvents(ctx, func(events []models.BarbecueEvent) ([]models.BarbecueEvent, error) {
		return append([]models.BarbecueEvent{event}, events...), nil
	})
	if err != nil {
		return nil, internalError("Failed to save event", err)
	}

	slog.Info("Event created", "event_id", event.ID, "per_person", perPerson)
	return connect.NewResponse(&api.CreateEventResponse{Event: toAPIEvent(event)}), nil
}

// ListEvents returns all events, newest first.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	events, err := s.store.LoadEvents(ctx)
	if err != nil {
		return nil, internalError("Failed to load events", err)
	}

	out := make([]*api.BarbecueEvent, len(events))
	for i, e := range events {
		out[i] = toAPIEvent(e)
	}

	slog.Debug("ListEvents", "count", len(out))
	return connect.NewResponse(&api.ListEventsResponse{Events: out}), nil
}

var errEventNotFound = errors.New("event not found")

// DeleteEvent removes an event. Payment keys referring to it are left in the
// registry.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	slog.Info("DeleteEvent request received", "event_id", req.Msg.EventID)

	_, err := s.store.UpdateEvents(ctx, func(events []models.BarbecueEvent) ([]models.BarbecueEvent, error) {
		out := make([]models.BarbecueEvent, 0, len(events))
		for _, e := range events {
			if e.ID != req.Msg.EventID {
				out = append(out, e)
			}
		}
		if len(out) == len(events) {
			return nil, errEventNotFound
		}
		return out, nil
	})
	if errors.Is(err, errEventNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, internalError("Failed to delete event", err, "event_id", req.Msg.EventID)
	}

	slog.Info("Event deleted", "event_id", req.Msg.EventID)
	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}
