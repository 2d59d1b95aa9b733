package roster

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmynk/futmanager/internal/models"
)

// searchThreshold is the minimum similarity for a non-substring match.
const searchThreshold = 0.6

type scored struct {
	player   models.Player
	distance int
}

// Search returns the players whose name matches query, best match first.
// Substring matches always qualify; otherwise the Levenshtein similarity of
// the query to the name, or to any single word of it, must reach the
// threshold. An empty query returns nothing.
func Search(players []models.Player, query string) []models.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Player{}
	}

	var matches []scored
	for _, p := range players {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, q) {
			matches = append(matches, scored{player: p, distance: 0})
			continue
		}

		best := -1
		for _, candidate := range append([]string{name}, strings.Fields(name)...) {
			distance := fuzzy.LevenshteinDistance(q, candidate)
			maxLen := float64(max(len(q), len(candidate)))
			if 1-float64(distance)/maxLen < searchThreshold {
				continue
			}
			if best == -1 || distance < best {
				best = distance
			}
		}
		if best > 0 {
			matches = append(matches, scored{player: p, distance: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return strings.ToLower(matches[i].player.Name) < strings.ToLower(matches[j].player.Name)
	})

	out := make([]models.Player, len(matches))
	for i, m := range matches {
		out[i] = m.player
	}
	return out
}
