package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/futmanager/internal/models"
)

func names(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func TestSearch(t *testing.T) {
	players := []models.Player{
		{ID: "1", Name: "Rafael Souza"},
		{ID: "2", Name: "Rafaela Lima"},
		{ID: "3", Name: "Bruno Costa"},
		{ID: "4", Name: "Gabriel"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring case insensitive", "RAFA", []string{"Rafael Souza", "Rafaela Lima"}},
		{"typo in first name", "brunu", []string{"Bruno Costa"}},
		{"typo in last name", "costta", []string{"Bruno Costa"}},
		{"no match", "xyz", []string{}},
		{"blank query", "  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Search(players, tt.query)))
		})
	}
}

func TestSearch_RankedByDistance(t *testing.T) {
	players := []models.Player{
		{ID: "1", Name: "Marcus"},
		{ID: "2", Name: "Marcos"},
	}
	got := names(Search(players, "marcos"))
	assert.Equal(t, []string{"Marcos", "Marcus"}, got)
}
