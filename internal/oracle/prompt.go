package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmynk/futmanager/internal/balancer"
)

// TeamPrompt renders the instructions and the player pool for a proposal.
func TeamPrompt(req balancer.ProposalRequest) (string, error) {
	players, err := json.Marshal(req.Players)
	if err != nil {
		return "", fmt.Errorf("failed to encode players: %w", err)
	}

	var b strings.Builder
	b.WriteString("Organize a soccer match with these players.\n")
	fmt.Fprintf(&b, "Total Players: %d.\n", len(req.Players))
	fmt.Fprintf(&b, "Target Teams: %d.\n\n", req.TeamCount)
	b.WriteString("Rules:\n")
	b.WriteString("1. Distribute goalkeepers (isGoalkeeper: true) as evenly as possible. No team should have 2 goalkeepers if possible.\n")
	b.WriteString("2. Balance the teams on 'stars' (1-5) so the sums of stars are similar.\n")
	b.WriteString("3. Use wins, draws, losses and performanceModifier (-1 to 1) as recent form: players in good form count as slightly stronger.\n")
	b.WriteString("4. Place every player exactly once, using only the ids given.\n")
	fmt.Fprintf(&b, "5. Return exactly %d teams.\n\n", req.TeamCount)
	b.WriteString("Players JSON:\n")
	b.Write(players)
	return b.String(), nil
}

// AvatarPrompt describes the profile picture of a player.
func AvatarPrompt(name string, goalkeeper bool) string {
	outfit := "wearing a soccer jersey"
	if goalkeeper {
		outfit = "wearing goalkeeper gloves"
	}
	return "A cool, stylized, vector art profile icon of a soccer player.\n" +
		"Style: minimalist flat design, vibrant green and black colors, dark background.\n" +
		fmt.Sprintf("Subject: a player character named %s %s.\n", name, outfit) +
		"The image should be centered, circular composition if possible, high quality."
}
