package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/pkg/api"
)

type fakeProposer struct {
	teams func(req balancer.ProposalRequest) []balancer.ProposedTeam
	err   error
}

func (f *fakeProposer) ProposeTeams(_ context.Context, req balancer.ProposalRequest) ([]balancer.ProposedTeam, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teams(req), nil
}

// roundRobin deals the proposal players across the requested teams.
func roundRobin(req balancer.ProposalRequest) []balancer.ProposedTeam {
	teams := make([]balancer.ProposedTeam, req.TeamCount)
	for i, p := range req.Players {
		teams[i%req.TeamCount].PlayerIDs = append(teams[i%req.TeamCount].PlayerIDs, p.ID)
	}
	return teams
}

// addSquad saves n active members named P1..Pn and returns their ids.
func addSquad(t *testing.T, c *testClients, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		p := addPlayer(t, c, &api.Player{Name: "P" + string(rune('A'+i)), Stars: 1 + i%5})
		ids[i] = p.ID
	}
	return ids
}

func TestDrawTeams_Local(t *testing.T) {
	notifier := &recordingNotifier{}
	c := setupTestServer(t, testOptions{notifier: notifier})
	ids := addSquad(t, c, 7)

	resp, err := c.match.DrawTeams(context.Background(), connect.NewRequest(&api.DrawTeamsRequest{
		PlayerIDs: ids,
		Announce:  true,
	}))
	if err != nil {
		t.Fatalf("DrawTeams failed: %v", err)
	}

	if resp.Msg.Strategy != balancer.StrategyLocal {
		t.Errorf("expected local strategy, got %q", resp.Msg.Strategy)
	}
	if len(resp.Msg.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(resp.Msg.Teams))
	}
	placed := 0
	for i, team := range resp.Msg.Teams {
		if team.ID != i+1 {
			t.Errorf("expected team id %d, got %d", i+1, team.ID)
		}
		placed += len(team.Players)
	}
	if placed != len(ids) {
		t.Errorf("expected %d players placed, got %d", len(ids), placed)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one announcement, got %d", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0], "Team 1") {
		t.Errorf("announcement does not list the teams: %q", notifier.sent[0])
	}
}

func TestDrawTeams_AnnouncementFailureIsIgnored(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("chat offline")}
	c := setupTestServer(t, testOptions{notifier: notifier})
	ids := addSquad(t, c, 4)

	_, err := c.match.DrawTeams(context.Background(), connect.NewRequest(&api.DrawTeamsRequest{PlayerIDs: ids, Announce: true}))
	if err != nil {
		t.Fatalf("DrawTeams failed: %v", err)
	}
}

func TestDrawTeams_Rejections(t *testing.T) {
	c := setupTestServer(t, testOptions{})
	ctx := context.Background()
	ids := addSquad(t, c, 5)

	if _, err := c.roster.TogglePlayerStatus(ctx, connect.NewRequest(&api.TogglePlayerStatusRequest{PlayerID: ids[4]})); err != nil {
		t.Fatalf("TogglePlayerStatus failed: %v", err)
	}

	tests := []struct {
		name     string
		req      *api.DrawTeamsRequest
		wantCode connect.Code
	}{
		{"too few players", &api.DrawTeamsRequest{PlayerIDs: ids[:3]}, connect.CodeInvalidArgument},
		{"unknown player", &api.DrawTeamsRequest{PlayerIDs: append([]string{"ghost"}, ids[:4]...)}, connect.CodeInvalidArgument},
		{"inactive player", &api.DrawTeamsRequest{PlayerIDs: ids}, connect.CodeInvalidArgument},
		{"duplicate player", &api.DrawTeamsRequest{PlayerIDs: []string{ids[0], ids[0], ids[1], ids[2]}}, connect.CodeInvalidArgument},
		{"unknown strategy", &api.DrawTeamsRequest{PlayerIDs: ids[:4], Strategy: "random"}, connect.CodeInvalidArgument},
		{"oracle not configured", &api.DrawTeamsRequest{PlayerIDs: ids[:4], Strategy: balancer.StrategyOracle}, connect.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.match.DrawTeams(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestDrawTeams_Oracle(t *testing.T) {
	ctx := context.Background()

	t.Run("proposal accepted", func(t *testing.T) {
		c := setupTestServer(t, testOptions{oracle: balancer.NewOracle(&fakeProposer{teams: roundRobin})})
		ids := addSquad(t, c, 6)

		resp, err := c.match.DrawTeams(ctx, connect.NewRequest(&api.DrawTeamsRequest{PlayerIDs: ids, Strategy: balancer.StrategyOracle}))
		if err != nil {
			t.Fatalf("DrawTeams failed: %v", err)
		}
		if resp.Msg.Strategy != balancer.StrategyOracle {
			t.Errorf("expected oracle strategy, got %q", resp.Msg.Strategy)
		}
		if len(resp.Msg.Teams) != 3 {
			t.Errorf("expected 3 teams, got %d", len(resp.Msg.Teams))
		}
	})

	t.Run("proposer failure", func(t *testing.T) {
		c := setupTestServer(t, testOptions{oracle: balancer.NewOracle(&fakeProposer{err: errors.New("timeout")})})
		ids := addSquad(t, c, 6)

		_, err := c.match.DrawTeams(ctx, connect.NewRequest(&api.DrawTeamsRequest{PlayerIDs: ids, Strategy: balancer.StrategyOracle}))
		assertCode(t, err, connect.CodeUnavailable)
	})

	t.Run("malformed proposal", func(t *testing.T) {
		dropLast := func(req balancer.ProposalRequest) []balancer.ProposedTeam {
			req.Players = req.Players[:len(req.Players)-1]
			return roundRobin(req)
		}
		c := setupTestServer(t, testOptions{oracle: balancer.NewOracle(&fakeProposer{teams: dropLast})})
		ids := addSquad(t, c, 6)

		_, err := c.match.DrawTeams(ctx, connect.NewRequest(&api.DrawTeamsRequest{PlayerIDs: ids, Strategy: balancer.StrategyOracle}))
		assertCode(t, err, connect.CodeUnavailable)
	})
}

func TestSaveMatchDay(t *testing.T) {
	c := setupTestServer(t, testOptions{})
	ctx := context.Background()
	ids := addSquad(t, c, 4)

	resp, err := c.match.SaveMatchDay(ctx, connect.NewRequest(&api.SaveMatchDayRequest{
		Teams: []*api.Team{
			// Client-provided stars are ignored in favor of the roster
			{ID: 1, Name: "Red", Players: []*api.Player{{ID: ids[0], Stars: 5}, {ID: ids[1]}}},
			{ID: 2, Players: []*api.Player{{ID: ids[2]}, {ID: ids[3]}}},
		},
		Matches: []*api.Match{{TeamAID: 1, TeamBID: 2, ScoreA: 3, ScoreB: 1}},
	}))
	if err != nil {
		t.Fatalf("SaveMatchDay failed: %v", err)
	}

	day := resp.Msg.MatchDay
	if day.ID == "" {
		t.Error("expected an id")
	}
	if day.DateString != "15/03/2024" {
		t.Errorf("expected date 15/03/2024, got %q", day.DateString)
	}
	if day.Timestamp != testNow.UnixMilli() {
		t.Errorf("expected timestamp %d, got %d", testNow.UnixMilli(), day.Timestamp)
	}
	// Stars are 1, 2, 3, 4: averages 1.5 and 3.5
	if day.Teams[0].TotalStars != 3 || day.Teams[0].AverageStars != 1.5 {
		t.Errorf("team 1 aggregates not recomputed: %+v", day.Teams[0])
	}
	if day.Teams[1].Name != "Team 2" {
		t.Errorf("expected default name, got %q", day.Teams[1].Name)
	}
	if day.Stats.TotalPlayers != 4 || day.Stats.AverageBalance != 2.5 {
		t.Errorf("unexpected stats: %+v", day.Stats)
	}
	if len(day.Matches) != 1 || day.Matches[0].ID == "" {
		t.Errorf("expected the match to get an id: %+v", day.Matches)
	}
}

func TestSaveMatchDay_Rejections(t *testing.T) {
	c := setupTestServer(t, testOptions{})
	ctx := context.Background()
	ids := addSquad(t, c, 4)

	twoTeams := func() []*api.Team {
		return []*api.Team{
			{ID: 1, Players: []*api.Player{{ID: ids[0]}, {ID: ids[1]}}},
			{ID: 2, Players: []*api.Player{{ID: ids[2]}, {ID: ids[3]}}},
		}
	}

	tests := []struct {
		name string
		req  *api.SaveMatchDayRequest
	}{
		{"no teams", &api.SaveMatchDayRequest{}},
		{"empty team", &api.SaveMatchDayRequest{Teams: []*api.Team{{ID: 1}}}},
		{"unknown player", &api.SaveMatchDayRequest{Teams: []*api.Team{{ID: 1, Players: []*api.Player{{ID: "ghost"}}}}}},
		{"player on two teams", &api.SaveMatchDayRequest{Teams: []*api.Team{
			{ID: 1, Players: []*api.Player{{ID: ids[0]}}},
			{ID: 2, Players: []*api.Player{{ID: ids[0]}}},
		}}},
		{"duplicate team id", &api.SaveMatchDayRequest{Teams: []*api.Team{
			{ID: 1, Players: []*api.Player{{ID: ids[0]}}},
			{ID: 1, Players: []*api.Player{{ID: ids[1]}}},
		}}},
		{"team plays itself", &api.SaveMatchDayRequest{Teams: twoTeams(), Matches: []*api.Match{{TeamAID: 1, TeamBID: 1}}}},
		{"unknown team", &api.SaveMatchDayRequest{Teams: twoTeams(), Matches: []*api.Match{{TeamAID: 1, TeamBID: 3}}}},
		{"negative score", &api.SaveMatchDayRequest{Teams: twoTeams(), Matches: []*api.Match{{TeamAID: 1, TeamBID: 2, ScoreA: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.match.SaveMatchDay(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	resp, err := c.match.ListHistory(ctx, connect.NewRequest(&api.ListHistoryRequest{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(resp.Msg.History) != 0 {
		t.Errorf("rejected match days must not be stored, got %d", len(resp.Msg.History))
	}
}

func TestHistoryAndPerformance(t *testing.T) {
	c := setupTestServer(t, testOptions{})
	ctx := context.Background()
	ids := addSquad(t, c, 5)

	save := func(ts int64, scoreA, scoreB int) string {
		resp, err := c.match.SaveMatchDay(ctx, connect.NewRequest(&api.SaveMatchDayRequest{
			Teams: []*api.Team{
				{ID: 1, Players: []*api.Player{{ID: ids[0]}, {ID: ids[1]}}},
				{ID: 2, Players: []*api.Player{{ID: ids[2]}, {ID: ids[3]}}},
			},
			Matches:   []*api.Match{{TeamAID: 1, TeamBID: 2, ScoreA: scoreA, ScoreB: scoreB}},
			Timestamp: ts,
		}))
		if err != nil {
			t.Fatalf("SaveMatchDay failed: %v", err)
		}
		return resp.Msg.MatchDay.ID
	}

	first := save(testNow.AddDate(0, 0, -7).UnixMilli(), 2, 0)
	second := save(testNow.UnixMilli(), 1, 1)

	history, err := c.match.ListHistory(ctx, connect.NewRequest(&api.ListHistoryRequest{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history.Msg.History) != 2 || history.Msg.History[0].ID != second || history.Msg.History[1].ID != first {
		t.Fatalf("expected newest first, got %d entries", len(history.Msg.History))
	}

	perf, err := c.match.GetPerformance(ctx, connect.NewRequest(&api.GetPerformanceRequest{}))
	if err != nil {
		t.Fatalf("GetPerformance failed: %v", err)
	}
	// ids[4] never played
	if len(perf.Msg.Players) != 4 {
		t.Fatalf("expected 4 players with a record, got %d", len(perf.Msg.Players))
	}
	top := perf.Msg.Players[0]
	if top.PlayerID != ids[0] && top.PlayerID != ids[1] {
		t.Errorf("expected a team 1 player on top, got %s", top.Name)
	}
	if top.Wins != 1 || top.Draws != 1 || top.WinRate != 75 || top.Modifier != 0.5 {
		t.Errorf("unexpected record: %+v", top)
	}
	last := perf.Msg.Players[3]
	if last.Losses != 1 || last.Modifier != -0.5 {
		t.Errorf("unexpected record: %+v", last)
	}

	if _, err := c.match.DeleteMatchDay(ctx, connect.NewRequest(&api.DeleteMatchDayRequest{MatchDayID: first})); err != nil {
		t.Fatalf("DeleteMatchDay failed: %v", err)
	}
	_, err = c.match.DeleteMatchDay(ctx, connect.NewRequest(&api.DeleteMatchDayRequest{MatchDayID: first}))
	assertCode(t, err, connect.CodeNotFound)

	history, err = c.match.ListHistory(ctx, connect.NewRequest(&api.ListHistoryRequest{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history.Msg.History) != 1 || history.Msg.History[0].ID != second {
		t.Errorf("expected only the second match day to remain")
	}
}
