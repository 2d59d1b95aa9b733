package models

// PlayerType classifies how a player is billed.
type PlayerType string

const (
	// PlayerTypeMember is a recurring member paying a fixed monthly due.
	PlayerTypeMember PlayerType = "MENSALISTA"

	// PlayerTypeGuest pays per match day attended and may be sponsored by a member.
	PlayerTypeGuest PlayerType = "AVULSO"
)

// Valid reports whether t is one of the known classifications.
func (t PlayerType) Valid() bool {
	return t == PlayerTypeMember || t == PlayerTypeGuest
}

const (
	// MinStars and MaxStars bound a player's skill rating.
	MinStars = 1
	MaxStars = 5

	// DefaultStars is assigned to new players without a rating.
	DefaultStars = 3
)

// Player represents one person on the roster.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email and VestNumber are optional contact/jersey metadata.
	Email      string `json:"email,omitempty"`
	VestNumber string `json:"vestNumber,omitempty"`

	// PhotoURL is either a remote URL or a data URI produced by the avatar oracle.
	PhotoURL string `json:"photoUrl,omitempty"`

	// IsGoalkeeper marks players distributed in the goalkeeper phase of a draw.
	IsGoalkeeper bool `json:"isGoalkeeper"`

	// Type is the membership classification.
	Type PlayerType `json:"type"`

	// SponsorID references the recurring member responsible for a guest.
	// Only meaningful for guests; the reference may dangle after the sponsor
	// is deleted or demoted.
	SponsorID string `json:"linkedMensalistaId,omitempty"`

	// Stars is the skill rating (1-5).
	Stars int `json:"stars"`

	// IsActive is false for soft-deleted players.
	IsActive bool `json:"isActive"`

	// CreatedAt is the creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// IsMember reports whether p is a recurring member.
func (p Player) IsMember() bool {
	return p.Type == PlayerTypeMember
}

// IsGuest reports whether p is a guest.
func (p Player) IsGuest() bool {
	return p.Type == PlayerTypeGuest
}

// UnlinkedSponsor is displayed for guests whose sponsor no longer resolves.
const UnlinkedSponsor = "unlinked"
