package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mmynk/futmanager/internal/calculator"
	"github.com/mmynk/futmanager/internal/models"
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

// FormatTeams renders a draw for the group chat.
func FormatTeams(teams []models.Team) string {
	var b strings.Builder
	b.WriteString("*Teams are out!*\n")
	for _, t := range teams {
		fmt.Fprintf(&b, "\n*%s* (%.1f★)\n", escape(t.Name), t.AverageStars)
		for _, p := range t.Players {
			b.WriteString("• ")
			b.WriteString(escape(p.Name))
			if p.IsGoalkeeper {
				b.WriteString(" (GK)")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatMonthlySummary renders the totals of a finance report and lists the
// players with open obligations.
func FormatMonthlySummary(r calculator.MonthlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Finance summary %s*\n\n", r.Month)
	fmt.Fprintf(&b, "Expected: %s\n", money(r.TotalExpected))
	fmt.Fprintf(&b, "Collected: %s\n", money(r.TotalCollected))
	fmt.Fprintf(&b, "Cash balance: %s\n", money(r.CashBalance))

	var open []string
	for _, st := range append(append([]calculator.PlayerStatement{}, r.Members...), r.Guests...) {
		if owed := st.Expected() - st.Collected(); owed > 0.005 {
			open = append(open, fmt.Sprintf("• %s: %s", escape(st.PlayerName), money(owed)))
		}
	}
	if len(open) == 0 {
		b.WriteString("\nEverybody is paid up.\n")
		return b.String()
	}
	b.WriteString("\nStill open:\n")
	b.WriteString(strings.Join(open, "\n"))
	b.WriteString("\n")
	return b.String()
}

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
