package api

// Player is a roster entry.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	VestNumber   string `json:"vestNumber,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	IsGoalkeeper bool   `json:"isGoalkeeper"`

	// Type is "MENSALISTA" (recurring member) or "AVULSO" (guest).
	Type string `json:"type"`

	// SponsorID is the recurring member responsible for a guest.
	SponsorID string `json:"linkedMensalistaId,omitempty"`

	Stars     int   `json:"stars"`
	IsActive  bool  `json:"isActive"`
	CreatedAt int64 `json:"createdAt"`
}

type ListPlayersRequest struct{}

type ListPlayersResponse struct {
	// Players are sorted by name.
	Players []*Player `json:"players"`
}

// SavePlayerRequest creates a player when Player.ID is empty, otherwise
// replaces the player with that id.
type SavePlayerRequest struct {
	Player *Player `json:"player"`
}

type SavePlayerResponse struct {
	Player *Player `json:"player"`
}

type DeletePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type DeletePlayerResponse struct{}

type TogglePlayerStatusRequest struct {
	PlayerID string `json:"playerId"`
}

type TogglePlayerStatusResponse struct {
	Player *Player `json:"player"`
}

type PromotePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type PromotePlayerResponse struct {
	Player *Player `json:"player"`
}

// DemotePlayerRequest turns a member into a guest. An empty SponsorID picks
// the first other active member by name.
type DemotePlayerRequest struct {
	PlayerID  string `json:"playerId"`
	SponsorID string `json:"sponsorId,omitempty"`
}

type DemotePlayerResponse struct {
	Player *Player `json:"player"`
}

type UpdateRatingRequest struct {
	PlayerID string `json:"playerId"`
	Stars    int    `json:"stars"`
}

type UpdateRatingResponse struct {
	Player *Player `json:"player"`
}

type SearchPlayersRequest struct {
	Query string `json:"query"`
}

type SearchPlayersResponse struct {
	// Players are ordered best match first.
	Players []*Player `json:"players"`
}

type GenerateAvatarRequest struct {
	Name         string `json:"name"`
	IsGoalkeeper bool   `json:"isGoalkeeper"`
}

type GenerateAvatarResponse struct {
	// PhotoURL is a data URI.
	PhotoURL string `json:"photoUrl"`
}
