package balancer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/futmanager/internal/models"
)

// Strategy names accepted by DrawTeams.
const (
	StrategyLocal  = "local"
	StrategyOracle = "oracle"
)

// ErrMalformedProposal is returned when an external proposal cannot be
// turned into a valid partition of the selected players.
var ErrMalformedProposal = errors.New("malformed team proposal")

// Strategy produces teams for a pool of players. History provides the
// performance context used to order the draft.
type Strategy interface {
	Name() string
	Balance(ctx context.Context, players []models.Player, history []models.GameHistory) ([]models.Team, error)
}

// Local is the deterministic snake-draft strategy.
type Local struct{}

var _ Strategy = Local{}

// Name implements Strategy.
func (Local) Name() string { return StrategyLocal }

// Balance implements Strategy.
func (Local) Balance(_ context.Context, players []models.Player, history []models.GameHistory) ([]models.Team, error) {
	return Balance(players, PerformanceFromHistory(history))
}

// ProposalPlayer is the view of a player sent to an external proposer.
type ProposalPlayer struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Stars        int     `json:"stars"`
	IsGoalkeeper bool    `json:"isGoalkeeper"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	Modifier     float64 `json:"performanceModifier"`
}

// ProposalRequest asks for exactly TeamCount teams.
type ProposalRequest struct {
	Players   []ProposalPlayer
	TeamCount int
}

// ProposedTeam is one team as returned by a proposer: a name and member ids.
type ProposedTeam struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

// Proposer is an external, untrusted source of team splits.
type Proposer interface {
	ProposeTeams(ctx context.Context, req ProposalRequest) ([]ProposedTeam, error)
}

// Oracle delegates the split to a Proposer and rebuilds the teams from the
// known players. Nothing numeric in the proposal is trusted.
type Oracle struct {
	proposer Proposer
}

var _ Strategy = (*Oracle)(nil)

// NewOracle creates an Oracle strategy backed by the given proposer.
func NewOracle(proposer Proposer) *Oracle {
	return &Oracle{proposer: proposer}
}

// Name implements Strategy.
func (o *Oracle) Name() string { return StrategyOracle }

// Balance implements Strategy. Any proposer error or malformed proposal
// fails the whole draw.
func (o *Oracle) Balance(ctx context.Context, players []models.Player, history []models.GameHistory) ([]models.Team, error) {
	if len(players) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}
	if err := checkDistinct(players); err != nil {
		return nil, err
	}

	perf := PerformanceFromHistory(history)
	req := ProposalRequest{
		Players:   make([]ProposalPlayer, len(players)),
		TeamCount: TeamCount(len(players)),
	}
	for i, p := range players {
		rec := perf[p.ID]
		req.Players[i] = ProposalPlayer{
			ID:           p.ID,
			Name:         p.Name,
			Stars:        p.Stars,
			IsGoalkeeper: p.IsGoalkeeper,
			Wins:         rec.Wins,
			Draws:        rec.Draws,
			Losses:       rec.Losses,
			Modifier:     models.RoundTenth(rec.Modifier()),
		}
	}

	proposal, err := o.proposer.ProposeTeams(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("team proposal failed: %w", err)
	}
	return Reconstruct(players, proposal, req.TeamCount)
}

// Reconstruct turns a proposal into teams. The proposal must contain exactly
// teamCount teams and place every player exactly once, using only known ids.
// Aggregates are computed from the known player records.
func Reconstruct(players []models.Player, proposal []ProposedTeam, teamCount int) ([]models.Team, error) {
	if len(proposal) != teamCount {
		return nil, fmt.Errorf("%w: got %d teams, want %d", ErrMalformedProposal, len(proposal), teamCount)
	}

	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	placed := make(map[string]bool, len(players))
	teams := make([]models.Team, len(proposal))
	for i, pt := range proposal {
		team := models.Team{ID: i + 1, Name: strings.TrimSpace(pt.Name), Players: []models.Player{}}
		if team.Name == "" {
			team.Name = TeamName(i + 1)
		}
		for _, id := range pt.PlayerIDs {
			p, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: unknown player %q", ErrMalformedProposal, id)
			}
			if placed[id] {
				return nil, fmt.Errorf("%w: player %q placed twice", ErrMalformedProposal, id)
			}
			placed[id] = true
			team.Players = append(team.Players, p)
		}
		team.Recalculate()
		teams[i] = team
	}

	if len(placed) != len(byID) {
		return nil, fmt.Errorf("%w: %d of %d players placed", ErrMalformedProposal, len(placed), len(byID))
	}
	return teams, nil
}
