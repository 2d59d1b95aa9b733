// Package roster implements the operations on the player roster.
//
// Every function takes the current roster and returns a new slice; the input
// is never modified, so callers can load, transform and save in one step.
package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mmynk/futmanager/internal/models"
)

var (
	// ErrPlayerNotFound is returned when an id does not resolve.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInvalidRating is returned for ratings outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrNoSponsor is returned when a guest needs a sponsor and no other
	// active member exists.
	ErrNoSponsor = errors.New("no active member available as sponsor")

	// ErrInvalidPlayer is returned by Validate.
	ErrInvalidPlayer = errors.New("invalid player")
)

// Validate checks the fields a client may set on a player.
func Validate(p models.Player) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPlayer, p.Type)
	}
	if p.Stars < models.MinStars || p.Stars > models.MaxStars {
		return ErrInvalidRating
	}
	return nil
}

// Find returns the player with the given id.
func Find(players []models.Player, id string) (models.Player, bool) {
	if i := indexOf(players, id); i >= 0 {
		return players[i], true
	}
	return models.Player{}, false
}

// Upsert replaces the player with the same id or appends it.
func Upsert(players []models.Player, p models.Player) []models.Player {
	out := clone(players)
	if i := indexOf(out, p.ID); i >= 0 {
		out[i] = p
		return out
	}
	return append(out, p)
}

// Remove deletes a player. Guests sponsored by the player keep their
// now-dangling sponsor reference.
func Remove(players []models.Player, id string) ([]models.Player, error) {
	i := indexOf(players, id)
	if i < 0 {
		return nil, ErrPlayerNotFound
	}
	out := make([]models.Player, 0, len(players)-1)
	out = append(out, players[:i]...)
	return append(out, players[i+1:]...), nil
}

// ToggleActive flips the active flag.
func ToggleActive(players []models.Player, id string) ([]models.Player, error) {
	return update(players, id, func(p *models.Player) error {
		p.IsActive = !p.IsActive
		return nil
	})
}

// Promote turns a player into a recurring member and clears the sponsor.
func Promote(players []models.Player, id string) ([]models.Player, error) {
	return update(players, id, func(p *models.Player) error {
		p.Type = models.PlayerTypeMember
		p.SponsorID = ""
		return nil
	})
}

// Demote turns a player into a guest sponsored by sponsorID. An empty
// sponsorID picks the first other active member by name. Guests the player
// sponsored are left untouched.
func Demote(players []models.Player, id, sponsorID string) ([]models.Player, error) {
	if indexOf(players, id) < 0 {
		return nil, ErrPlayerNotFound
	}

	if sponsorID == "" {
		candidates := ActiveMembers(players)
		for _, m := range candidates {
			if m.ID != id {
				sponsorID = m.ID
				break
			}
		}
		if sponsorID == "" {
			return nil, ErrNoSponsor
		}
	} else if err := checkSponsor(players, id, sponsorID); err != nil {
		return nil, err
	}

	return update(players, id, func(p *models.Player) error {
		p.Type = models.PlayerTypeGuest
		p.SponsorID = sponsorID
		return nil
	})
}

// SetRating sets a player's skill rating.
func SetRating(players []models.Player, id string, stars int) ([]models.Player, error) {
	if stars < models.MinStars || stars > models.MaxStars {
		return nil, ErrInvalidRating
	}
	return update(players, id, func(p *models.Player) error {
		p.Stars = stars
		return nil
	})
}

// CheckGuestSponsor validates the sponsor of a guest about to be written.
// Members and guests without a sponsor pass.
func CheckGuestSponsor(players []models.Player, p models.Player) error {
	if !p.IsGuest() || p.SponsorID == "" {
		return nil
	}
	return checkSponsor(players, p.ID, p.SponsorID)
}

// ActiveMembers returns the active recurring members sorted by name.
func ActiveMembers(players []models.Player) []models.Player {
	var out []models.Player
	for _, p := range players {
		if p.IsMember() && p.IsActive {
			out = append(out, p)
		}
	}
	SortByName(out)
	return out
}

// SponsorName resolves the display name of a guest's sponsor. A dangling
// reference resolves to models.UnlinkedSponsor; no sponsor resolves to "".
func SponsorName(players []models.Player, guest models.Player) string {
	if guest.SponsorID == "" {
		return ""
	}
	if sponsor, ok := Find(players, guest.SponsorID); ok {
		return sponsor.Name
	}
	return models.UnlinkedSponsor
}

// SortByName sorts players in place by case-insensitive name, then id.
func SortByName(players []models.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := strings.ToLower(players[i].Name), strings.ToLower(players[j].Name)
		if a != b {
			return a < b
		}
		return players[i].ID < players[j].ID
	})
}

func checkSponsor(players []models.Player, id, sponsorID string) error {
	if sponsorID == id {
		return fmt.Errorf("%w: a player cannot sponsor themselves", ErrInvalidPlayer)
	}
	sponsor, ok := Find(players, sponsorID)
	if !ok || !sponsor.IsMember() || !sponsor.IsActive {
		return fmt.Errorf("%w: sponsor %s is not an active member", ErrInvalidPlayer, sponsorID)
	}
	return nil
}

func update(players []models.Player, id string, fn func(*models.Player) error) ([]models.Player, error) {
	i := indexOf(players, id)
	if i < 0 {
		return nil, ErrPlayerNotFound
	}
	out := clone(players)
	if err := fn(&out[i]); err != nil {
		return nil, err
	}
	return out, nil
}

func indexOf(players []models.Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clone(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)
	return out
}
