package models

import "math"

// Team is one side produced by a draw. Teams are ephemeral until the match
// day is saved, at which point they are embedded in a GameHistory entry.
type Team struct {
	// ID is local to one draw (1-based).
	ID int `json:"id"`

	Name string `json:"name"`

	// Players is the ordered list of members placed on this team.
	Players []Player `json:"players"`

	// AverageStars is TotalStars / len(Players), rounded to one decimal.
	// Zero for an empty team.
	AverageStars float64 `json:"averageStars"`

	// TotalStars is the sum of member ratings.
	TotalStars int `json:"totalStars"`
}

// Recalculate derives TotalStars and AverageStars from Players.
func (t *Team) Recalculate() {
	total := 0
	for _, p := range t.Players {
		total += p.Stars
	}
	t.TotalStars = total
	if len(t.Players) == 0 {
		t.AverageStars = 0
		return
	}
	t.AverageStars = RoundTenth(float64(total) / float64(len(t.Players)))
}

// Match is a head-to-head result between two teams of the same match day.
type Match struct {
	ID        string `json:"id"`
	TeamAID   int    `json:"teamAId"`
	TeamBID   int    `json:"teamBId"`
	ScoreA    int    `json:"scoreA"`
	ScoreB    int    `json:"scoreB"`
	Timestamp int64  `json:"timestamp"`
}

// GameStats summarizes a saved match day.
type GameStats struct {
	TotalPlayers   int     `json:"totalPlayers"`
	AverageBalance float64 `json:"averageBalance"`
}

// GameHistory is a saved match day. The ledger is append-only, newest first.
type GameHistory struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`

	// DateString is the localized date (DD/MM/YYYY).
	DateString string `json:"dateString"`

	Teams   []Team    `json:"teams"`
	Matches []Match   `json:"matches,omitempty"`
	Stats   GameStats `json:"stats"`
}

// Team returns the team with the given local id.
func (g GameHistory) Team(id int) (Team, bool) {
	for _, t := range g.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// RoundTenth rounds v to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
