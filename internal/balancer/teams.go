// Package balancer splits a pool of players into teams of similar skill.
package balancer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmynk/futmanager/internal/models"
)

const (
	// MinPlayers is the smallest pool a draw accepts.
	MinPlayers = 4

	// largePoolThreshold is the pool size from which four teams are drawn.
	largePoolThreshold = 22
)

// ErrNotEnoughPlayers is returned for pools smaller than MinPlayers.
var ErrNotEnoughPlayers = fmt.Errorf("at least %d players are required", MinPlayers)

// ErrDuplicatePlayer is returned when the same player id appears twice in a pool.
var ErrDuplicatePlayer = errors.New("player selected more than once")

// TeamCount returns the number of teams for a pool of n players:
// 3 below 22 players, 4 from 22 on. The threshold is a policy, not an optimum.
func TeamCount(n int) int {
	if n >= largePoolThreshold {
		return 4
	}
	return 3
}

// TeamName is the default display name of the team with the given 1-based id.
func TeamName(id int) string {
	return fmt.Sprintf("Team %d", id)
}

// Balance partitions players into TeamCount(len(players)) teams.
//
// Algorithm:
//   - Goalkeepers, sorted by descending effective skill, are dealt round-robin
//     before anyone else, so no team gets a second goalkeeper while another
//     has none.
//   - Outfield players, sorted by descending effective skill, are dealt with a
//     snake draft: 0,1,...,N-1,N-1,...,1,0,0,1,...
//   - Sorting is stable, so equal skills keep their input order.
//
// Effective skill is the rating plus the performance modifier. Team
// aggregates use the raw ratings.
func Balance(players []models.Player, perf map[string]Performance) ([]models.Team, error) {
	if len(players) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}
	if err := checkDistinct(players); err != nil {
		return nil, err
	}

	n := TeamCount(len(players))
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{ID: i + 1, Name: TeamName(i + 1), Players: []models.Player{}}
	}

	var goalkeepers, outfield []models.Player
	for _, p := range players {
		if p.IsGoalkeeper {
			goalkeepers = append(goalkeepers, p)
		} else {
			outfield = append(outfield, p)
		}
	}

	sortBySkill(goalkeepers, perf)
	for i, p := range goalkeepers {
		teams[i%n].Players = append(teams[i%n].Players, p)
	}

	sortBySkill(outfield, perf)
	for i, p := range outfield {
		idx := snakeIndex(i, n)
		teams[idx].Players = append(teams[idx].Players, p)
	}

	for i := range teams {
		teams[i].Recalculate()
	}
	return teams, nil
}

// snakeIndex returns the team receiving the i-th pick of a snake draft over n teams.
func snakeIndex(i, n int) int {
	round := i / n
	pos := i % n
	if round%2 == 1 {
		return n - 1 - pos
	}
	return pos
}

func sortBySkill(players []models.Player, perf map[string]Performance) {
	sort.SliceStable(players, func(i, j int) bool {
		return EffectiveSkill(players[i], perf) > EffectiveSkill(players[j], perf)
	})
}

func checkDistinct(players []models.Player) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
