package api

type Team struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Players      []*Player `json:"players"`
	AverageStars float64   `json:"averageStars"`
	TotalStars   int       `json:"totalStars"`
}

type Match struct {
	ID        string `json:"id"`
	TeamAID   int    `json:"teamAId"`
	TeamBID   int    `json:"teamBId"`
	ScoreA    int    `json:"scoreA"`
	ScoreB    int    `json:"scoreB"`
	Timestamp int64  `json:"timestamp"`
}

type GameStats struct {
	TotalPlayers   int     `json:"totalPlayers"`
	AverageBalance float64 `json:"averageBalance"`
}

// GameHistory is a saved match day.
type GameHistory struct {
	ID         string    `json:"id"`
	Timestamp  int64     `json:"timestamp"`
	DateString string    `json:"dateString"`
	Teams      []*Team   `json:"teams"`
	Matches    []*Match  `json:"matches,omitempty"`
	Stats      GameStats `json:"stats"`
}

// PlayerPerformance is a player's record over all saved matches.
type PlayerPerformance struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Wins     int     `json:"wins"`
	Draws    int     `json:"draws"`
	Losses   int     `json:"losses"`

	// WinRate is a percentage; a draw counts as half a win.
	WinRate  float64 `json:"winRate"`
	Modifier float64 `json:"performanceModifier"`
}

// DrawTeamsRequest splits the selected players into teams.
// Strategy is "local" (default) or "oracle".
type DrawTeamsRequest struct {
	PlayerIDs []string `json:"playerIds"`
	Strategy  string   `json:"strategy,omitempty"`

	// Announce posts the teams to the group chat when one is configured.
	Announce bool `json:"announce,omitempty"`
}

type DrawTeamsResponse struct {
	Teams    []*Team `json:"teams"`
	Strategy string  `json:"strategy"`
}

// SaveMatchDayRequest records a match day. A zero Timestamp means now.
type SaveMatchDayRequest struct {
	Teams     []*Team  `json:"teams"`
	Matches   []*Match `json:"matches,omitempty"`
	Timestamp int64    `json:"timestamp,omitempty"`
}

type SaveMatchDayResponse struct {
	MatchDay *GameHistory `json:"matchDay"`
}

type ListHistoryRequest struct{}

type ListHistoryResponse struct {
	// History is newest first.
	History []*GameHistory `json:"history"`
}

type DeleteMatchDayRequest struct {
	MatchDayID string `json:"matchDayId"`
}

type DeleteMatchDayResponse struct{}

type GetPerformanceRequest struct{}

type GetPerformanceResponse struct {
	// Players holds every roster player with at least one recorded match,
	// sorted by modifier descending.
	Players []*PlayerPerformance `json:"players"`
}
