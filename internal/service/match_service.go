package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/internal/metrics"
	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/notify"
	"github.com/mmynk/futmanager/internal/oracle"
	"github.com/mmynk/futmanager/internal/roster"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// MatchService implements the Connect MatchService
type MatchService struct {
	store    storage.Store
	local    balancer.Strategy
	oracle   balancer.Strategy
	notifier notify.Notifier
	loc      *time.Location
	now      func() time.Time
}

var _ apiconnect.MatchServiceHandler = (*MatchService)(nil)

// NewMatchService creates a new MatchService. oracleStrategy may be nil when
// no oracle is configured; notifier may be nil to disable announcements.
func NewMatchService(store storage.Store, oracleStrategy balancer.Strategy, notifier notify.Notifier, loc *time.Location) *MatchService {
	if notifier == nil {
		notifier = notify.Log{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MatchService{
		store:    store,
		local:    balancer.Local{},
		oracle:   oracleStrategy,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// DrawTeams splits the selected active players into balanced teams.
// Nothing is persisted; the client saves the teams with SaveMatchDay.
func (s *MatchService) DrawTeams(ctx context.Context, req *connect.Request[api.DrawTeamsRequest]) (*connect.Response[api.DrawTeamsResponse], error) {
	slog.Info("DrawTeams request received", "count", len(req.Msg.PlayerIDs), "strategy", req.Msg.Strategy)

	strategy, err := s.strategy(req.Msg.Strategy)
	if err != nil {
		return nil, err
	}

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}
	pool := make([]models.Player, 0, len(req.Msg.PlayerIDs))
	for _, id := range req.Msg.PlayerIDs {
		p, ok := roster.Find(players, id)
		if !ok {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown player %q", id))
		}
		if !p.IsActive {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("player %q is inactive", p.Name))
		}
		pool = append(pool, p)
	}

	history, err := s.store.LoadHistory(ctx)
	if err != nil {
		return nil, internalError("Failed to load history", err)
	}

	teams, err := strategy.Balance(ctx, pool, history)
	metrics.TeamDraws.WithLabelValues(strategy.Name(), metrics.Outcome(err)).Inc()
	if err != nil {
		switch {
		case errors.Is(err, balancer.ErrNotEnoughPlayers), errors.Is(err, balancer.ErrDuplicatePlayer):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case strategy.Name() == balancer.StrategyOracle:
			slog.Warn("Oracle draw failed", "error", err)
			return nil, connect.NewError(connect.CodeUnavailable, err)
		default:
			return nil, internalError("Failed to draw teams", err)
		}
	}

	if req.Msg.Announce {
		// A failed announcement does not fail the draw
		if err := s.notifier.Send(ctx, notify.FormatTeams(teams)); err != nil {
			slog.Warn("Failed to announce teams", "error", err)
		}
	}

	slog.Info("Teams drawn", "strategy", strategy.Name(), "teams", len(teams))
	return connect.NewResponse(&api.DrawTeamsResponse{
		Teams:    toAPITeams(teams),
		Strategy: strategy.Name(),
	}), nil
}

func (s *MatchService) strategy(name string) (balancer.Strategy, error) {
	switch name {
	case "", balancer.StrategyLocal:
		return s.local, nil
	case balancer.StrategyOracle:
		if s.oracle == nil {
			return nil, connect.NewError(connect.CodeUnavailable, oracle.ErrDisabled)
		}
		return s.oracle, nil
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown strategy %q", name))
	}
}

// SaveMatchDay records the teams and results of a match day at the head of
// the history.
func (s *MatchService) SaveMatchDay(ctx context.Context, req *connect.Request[api.SaveMatchDayRequest]) (*connect.Response[api.SaveMatchDayResponse], error) {
	slog.Info("SaveMatchDay request received", "teams", len(req.Msg.Teams), "matches", len(req.Msg.Matches))

	if len(req.Msg.Teams) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("at least one team is required"))
	}

	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}

	teams, err := buildTeams(req.Msg.Teams, players)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	ts := req.Msg.Timestamp
	if ts == 0 {
		ts = s.now().UnixMilli()
	}

	matches, err := buildMatches(req.Msg.Matches, teams, ts)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	day := models.GameHistory{
		ID:         uuid.New().String(),
		Timestamp:  ts,
		DateString: dateString(ts, s.loc),
		Teams:      teams,
		Matches:    matches,
		Stats:      matchStats(teams),
	}

	_, err = s.store.UpdateHistory(ctx, func(history []models.GameHistory) ([]models.GameHistory, error) {
		return append([]models.GameHistory{day}, history...), nil
	})
	if err != nil {
		return nil, internalError("Failed to save match day", err)
	}

	slog.Info("Match day saved", "match_day_id", day.ID, "players", day.Stats.TotalPlayers)
	return connect.NewResponse(&api.SaveMatchDayResponse{MatchDay: toAPIGameHistory(day)}), nil
}

// buildTeams snapshots every team member from the roster and recomputes the
// aggregates. Client-provided stars and totals are ignored.
func buildTeams(in []*api.Team, players []models.Player) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(in))
	teamIDs := make(map[int]bool, len(in))
	placed := make(map[string]bool)

	for i, t := range in {
		if t == nil || len(t.Players) == 0 {
			return nil, fmt.Errorf("team %d has no players", i+1)
		}
		id := t.ID
		if id == 0 {
			id = i + 1
		}
		if teamIDs[id] {
			return nil, fmt.Errorf("duplicate team id %d", id)
		}
		teamIDs[id] = true

		team := models.Team{ID: id, Name: t.Name}
		if team.Name == "" {
			team.Name = balancer.TeamName(id)
		}
		for _, ap := range t.Players {
			if ap == nil {
				return nil, fmt.Errorf("team %d has an empty player entry", id)
			}
			p, ok := roster.Find(players, ap.ID)
			if !ok {
				return nil, fmt.Errorf("unknown player %q", ap.ID)
			}
			if placed[p.ID] {
				return nil, fmt.Errorf("player %q is on more than one team", p.Name)
			}
			placed[p.ID] = true
			team.Players = append(team.Players, p)
		}
		team.Recalculate()
		teams = append(teams, team)
	}
	return teams, nil
}

func buildMatches(in []*api.Match, teams []models.Team, ts int64) ([]models.Match, error) {
	known := make(map[int]bool, len(teams))
	for _, t := range teams {
		known[t.ID] = true
	}

	var matches []models.Match
	for i, m := range in {
		if m == nil {
			continue
		}
		switch {
		case m.TeamAID == m.TeamBID:
			return nil, fmt.Errorf("match %d: a team cannot play itself", i+1)
		case !known[m.TeamAID] || !known[m.TeamBID]:
			return nil, fmt.Errorf("match %d: unknown team", i+1)
		case m.ScoreA < 0 || m.ScoreB < 0:
			return nil, fmt.Errorf("match %d: scores cannot be negative", i+1)
		}

		match := models.Match{
			ID:        m.ID,
			TeamAID:   m.TeamAID,
			TeamBID:   m.TeamBID,
			ScoreA:    m.ScoreA,
			ScoreB:    m.ScoreB,
			Timestamp: m.Timestamp,
		}
		if match.ID == "" {
			match.ID = uuid.New().String()
		}
		if match.Timestamp == 0 {
			match.Timestamp = ts
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// matchStats counts the players and averages the team averages.
func matchStats(teams []models.Team) models.GameStats {
	stats := models.GameStats{}
	sum := 0.0
	for _, t := range teams {
		stats.TotalPlayers += len(t.Players)
		sum += t.AverageStars
	}
	if len(teams) > 0 {
		stats.AverageBalance = models.RoundTenth(sum / float64(len(teams)))
	}
	return stats
}

// ListHistory returns the saved match days, newest first.
func (s *MatchService) ListHistory(ctx context.Context, req *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error) {
	history, err := s.store.LoadHistory(ctx)
	if err != nil {
		return nil, internalError("Failed to load history", err)
	}

	out := make([]*api.GameHistory, len(history))
	for i, day := range history {
		out[i] = toAPIGameHistory(day)
	}

	slog.Debug("ListHistory", "count", len(out))
	return connect.NewResponse(&api.ListHistoryResponse{History: out}), nil
}

var errMatchDayNotFound = errors.New("match day not found")

// DeleteMatchDay removes a saved match day. Payment keys referring to it are
// left in the registry.
func (s *MatchService) DeleteMatchDay(ctx context.Context, req *connect.Request[api.DeleteMatchDayRequest]) (*connect.Response[api.DeleteMatchDayResponse], error) {
	slog.Info("DeleteMatchDay request received", "match_day_id", req.Msg.MatchDayID)

	_, err := s.store.UpdateHistory(ctx, func(history []models.GameHistory) ([]models.GameHistory, error) {
		out := make([]models.GameHistory, 0, len(history))
		for _, day := range history {
			if day.ID != req.Msg.MatchDayID {
				out = append(out, day)
			}
		}
		if len(out) == len(history) {
			return nil, errMatchDayNotFound
		}
		return out, nil
	})
	if errors.Is(err, errMatchDayNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, internalError("Failed to delete match day", err, "match_day_id", req.Msg.MatchDayID)
	}

	slog.Info("Match day deleted", "match_day_id", req.Msg.MatchDayID)
	return connect.NewResponse(&api.DeleteMatchDayResponse{}), nil
}

// GetPerformance returns the head-to-head record of every roster player that
// has played at least one recorded match.
func (s *MatchService) GetPerformance(ctx context.Context, req *connect.Request[api.GetPerformanceRequest]) (*connect.Response[api.GetPerformanceResponse], error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}
	history, err := s.store.LoadHistory(ctx)
	if err != nil {
		return nil, internalError("Failed to load history", err)
	}

	perf := balancer.PerformanceFromHistory(history)
	out := []*api.PlayerPerformance{}
	for _, p := range players {
		rec, ok := perf[p.ID]
		if !ok || rec.Games() == 0 {
			continue
		}
		out = append(out, toAPIPerformance(p, rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Modifier != out[j].Modifier {
			return out[i].Modifier > out[j].Modifier
		}
		return out[i].Name < out[j].Name
	})

	slog.Debug("GetPerformance", "count", len(out))
	return connect.NewResponse(&api.GetPerformanceResponse{Players: out}), nil
}
