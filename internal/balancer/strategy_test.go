package balancer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/futmanager/internal/models"
)

type fakeProposer struct {
	teams []ProposedTeam
	err   error
	got   ProposalRequest
}

func (f *fakeProposer) ProposeTeams(_ context.Context, req ProposalRequest) ([]ProposedTeam, error) {
	f.got = req
	return f.teams, f.err
}

func TestOracle_RebuildsTeamsFromKnownPlayers(t *testing.T) {
	players := pool(5, 4, 3, 2, 1)
	players[0].IsGoalkeeper = true
	proposer := &fakeProposer{teams: []ProposedTeam{
		{Name: "Red", PlayerIDs: []string{"p1", "p5"}},
		{Name: "", PlayerIDs: []string{"p2", "p4"}},
		{Name: "Blue", PlayerIDs: []string{"p3"}},
	}}

	teams, err := NewOracle(proposer).Balance(context.Background(), players, nil)
	require.NoError(t, err)
	require.Len(t, teams, 3)

	assert.Equal(t, 3, proposer.got.TeamCount)
	require.Len(t, proposer.got.Players, 5)
	assert.True(t, proposer.got.Players[0].IsGoalkeeper)

	assert.Equal(t, "Red", teams[0].Name)
	assert.Equal(t, TeamName(2), teams[1].Name)
	assert.Equal(t, 6, teams[0].TotalStars)
	assert.Equal(t, 3.0, teams[0].AverageStars)
	assert.Equal(t, 3, teams[2].TotalStars)
	assert.Equal(t, 3, teams[2].ID)
}

func TestOracle_SendsPerformanceContext(t *testing.T) {
	players := pool(3, 3, 3, 3)
	history := []models.GameHistory{{
		Teams: []models.Team{
			{ID: 1, Players: []models.Player{{ID: "p1"}}},
			{ID: 2, Players: []models.Player{{ID: "p2"}}},
		},
		Matches: []models.Match{
			{TeamAID: 1, TeamBID: 2, ScoreA: 1, ScoreB: 1},
			{TeamAID: 1, TeamBID: 2, ScoreA: 2, ScoreB: 0},
		},
	}}
	proposer := &fakeProposer{err: errors.New("stop")}

	_, err := NewOracle(proposer).Balance(context.Background(), players, history)
	require.Error(t, err)

	p1 := proposer.got.Players[0]
	assert.Equal(t, 1, p1.Wins)
	assert.Equal(t, 1, p1.Draws)
	assert.Equal(t, 0.5, p1.Modifier)
	assert.Equal(t, 1, proposer.got.Players[1].Losses)
}

func TestOracle_RejectsMalformedProposals(t *testing.T) {
	players := pool(5, 4, 3, 2)
	tests := []struct {
		name  string
		teams []ProposedTeam
	}{
		{
			name:  "wrong team count",
			teams: []ProposedTeam{{PlayerIDs: []string{"p1", "p2"}}, {PlayerIDs: []string{"p3", "p4"}}},
		},
		{
			name:  "unknown player",
			teams: []ProposedTeam{{PlayerIDs: []string{"p1", "x"}}, {PlayerIDs: []string{"p2", "p3"}}, {PlayerIDs: []string{"p4"}}},
		},
		{
			name:  "duplicate player",
			teams: []ProposedTeam{{PlayerIDs: []string{"p1", "p2"}}, {PlayerIDs: []string{"p2", "p3"}}, {PlayerIDs: []string{"p4"}}},
		},
		{
			name:  "missing player",
			teams: []ProposedTeam{{PlayerIDs: []string{"p1"}}, {PlayerIDs: []string{"p2"}}, {PlayerIDs: []string{"p3"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOracle(&fakeProposer{teams: tt.teams}).Balance(context.Background(), players, nil)
			assert.ErrorIs(t, err, ErrMalformedProposal)
		})
	}
}

func TestOracle_ProposerFailureIsAtomic(t *testing.T) {
	boom := errors.New("model unavailable")
	teams, err := NewOracle(&fakeProposer{err: boom}).Balance(context.Background(), pool(1, 2, 3, 4), nil)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, teams)
}

func TestOracle_ChecksPoolBeforeCalling(t *testing.T) {
	proposer := &fakeProposer{}
	_, err := NewOracle(proposer).Balance(context.Background(), pool(1, 2), nil)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.Zero(t, proposer.got.TeamCount)
}

func TestPerformance(t *testing.T) {
	assert.Equal(t, 0.0, Performance{}.Modifier())
	assert.Equal(t, 1.0, Performance{Wins: 3}.Modifier())
	assert.Equal(t, -1.0, Performance{Losses: 2}.Modifier())
	assert.Equal(t, 0.0, Performance{Wins: 1, Losses: 1}.Modifier())
	assert.Equal(t, 0.75, Performance{Wins: 1, Draws: 1}.WinRate())
}

func TestPerformanceFromHistory_SkipsUnknownTeams(t *testing.T) {
	history := []models.GameHistory{{
		Teams:   []models.Team{{ID: 1, Players: []models.Player{{ID: "p1"}}}},
		Matches: []models.Match{{TeamAID: 1, TeamBID: 9, ScoreA: 1}},
	}}
	assert.Empty(t, PerformanceFromHistory(history))
}
