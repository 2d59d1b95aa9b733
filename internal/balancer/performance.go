package balancer

import "github.com/mmynk/futmanager/internal/models"

// Performance is a player's head-to-head record across saved match days.
type Performance struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// Games returns the number of recorded head-to-head appearances.
func (p Performance) Games() int {
	return p.Wins + p.Draws + p.Losses
}

// WinRate returns (wins + 0.5*draws) / games, or 0 without games.
func (p Performance) WinRate() float64 {
	games := p.Games()
	if games == 0 {
		return 0
	}
	return (float64(p.Wins) + 0.5*float64(p.Draws)) / float64(games)
}

// Modifier maps the win rate onto [-1, +1]. Players without games get 0.
func (p Performance) Modifier() float64 {
	if p.Games() == 0 {
		return 0
	}
	return (p.WinRate() - 0.5) * 2
}

// PerformanceFromHistory tallies wins, draws and losses per player id over
// every match recorded in the history. A match counts for every player on
// either of its two teams; matches referencing unknown team ids are skipped.
func PerformanceFromHistory(history []models.GameHistory) map[string]Performance {
	perf := make(map[string]Performance)

	record := func(team models.Team, own, other int) {
		for _, p := range team.Players {
			rec := perf[p.ID]
			switch {
			case own > other:
				rec.Wins++
			case own == other:
				rec.Draws++
			default:
				rec.Losses++
			}
			perf[p.ID] = rec
		}
	}

	for _, day := range history {
		for _, m := range day.Matches {
			teamA, okA := day.Team(m.TeamAID)
			teamB, okB := day.Team(m.TeamBID)
			if !okA || !okB {
				continue
			}
			record(teamA, m.ScoreA, m.ScoreB)
			record(teamB, m.ScoreB, m.ScoreA)
		}
	}

	return perf
}

// EffectiveSkill is the rating adjusted by the performance modifier.
// It only orders the draft; stored ratings never change.
func EffectiveSkill(p models.Player, perf map[string]Performance) float64 {
	return float64(p.Stars) + perf[p.ID].Modifier()
}
