// Package calculator derives money owed and paid from the match and event ledgers.
package calculator

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/roster"
)

// FinanceInput is everything the aggregator reads. It is never modified.
type FinanceInput struct {
	Players  []models.Player
	History  []models.GameHistory
	Events   []models.BarbecueEvent
	Settings models.FinancialSettings
	Payments models.PaymentRegistry

	// Month is the target month of the report.
	Month models.YearMonth

	// Location buckets timestamps into months. Nil means UTC.
	Location *time.Location
}

// EventCharge is one player's share of an event in the target month.
type EventCharge struct {
	EventID     string  `json:"eventId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Key         string  `json:"key"`
	Paid        bool    `json:"paid"`
}

// PlayerStatement is one player's obligations for the target month.
type PlayerStatement struct {
	PlayerID   string            `json:"playerId"`
	PlayerName string            `json:"playerName"`
	Type       models.PlayerType `json:"type"`
	Active     bool              `json:"active"`

	// SponsorID and SponsorName are set for guests. SponsorName is
	// models.UnlinkedSponsor when the id no longer resolves.
	SponsorID   string `json:"sponsorId,omitempty"`
	SponsorName string `json:"sponsorName,omitempty"`

	// GamesPlayed counts match days in the month the player was on a team.
	GamesPlayed int `json:"gamesPlayed"`

	// AmountDue is the monthly due (members) or per-game fees (guests).
	AmountDue float64 `json:"amountDue"`
	Key       string  `json:"key"`
	Paid      bool    `json:"paid"`

	Events []EventCharge `json:"events,omitempty"`
}

// Expected returns the monthly amount plus all event shares.
func (s PlayerStatement) Expected() float64 {
	total := s.AmountDue
	for _, e := range s.Events {
		total += e.Amount
	}
	return total
}

// Collected returns the part of Expected that is marked paid.
func (s PlayerStatement) Collected() float64 {
	total := 0.0
	if s.Paid {
		total += s.AmountDue
	}
	for _, e := range s.Events {
		if e.Paid {
			total += e.Amount
		}
	}
	return total
}

// MonthlyReport is the finance view of one month.
type MonthlyReport struct {
	Month models.YearMonth `json:"month"`

	// Members and Guests are sorted by name.
	Members []PlayerStatement `json:"members"`
	Guests  []PlayerStatement `json:"guests"`

	TotalExpected  float64 `json:"totalExpected"`
	TotalCollected float64 `json:"totalCollected"`

	// CashBalance is the cumulative shared cash as of the end of Month.
	CashBalance float64 `json:"cashBalance"`
}

// CalculateMonthlyReport computes per-player obligations for the target month,
// the month's totals and the cumulative cash balance.
//
// Algorithm:
//   - Members owe the monthly fee while active, otherwise nothing.
//   - Guests owe the per-game fee for every match day of the month they played.
//   - Every event of the month adds its per-head share to each participant.
//   - Players with nothing due, no paid flag and no event share are omitted.
//   - The cash balance replays every month with activity (a match day, a
//     monthly payment key or an event) up to the target month: each one pays
//     the court rental once and collects the paid monthly amounts, where an
//     inactive member's paid flag collects nothing; each event
//     up to the target month pays its cash draw and collects the paid shares.
//
// Payment keys whose match day, event or player no longer exists are inert.
func CalculateMonthlyReport(in FinanceInput) MonthlyReport {
	attendance := attendanceByMonth(in.History, in.Location)

	report := MonthlyReport{
		Month:   in.Month,
		Members: []PlayerStatement{},
		Guests:  []PlayerStatement{},
	}

	monthEvents := eventsInMonth(in.Events, in.Month, in.Location)

	for _, p := range in.Players {
		key := models.MonthlyKey(in.Month, p.ID)
		st := PlayerStatement{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Type:        p.Type,
			Active:      p.IsActive,
			GamesPlayed: attendance[in.Month][p.ID],
			AmountDue:   amountDue(p, attendance[in.Month][p.ID], in.Settings),
			Key:         key,
			Paid:        in.Payments.IsPaid(key),
		}
		if p.IsGuest() && p.SponsorID != "" {
			st.SponsorID = p.SponsorID
			st.SponsorName = roster.SponsorName(in.Players, p)
		}

		for _, e := range monthEvents {
			if !e.HasParticipant(p.ID) {
				continue
			}
			eventKey := models.EventKey(e.ID, p.ID)
			st.Events = append(st.Events, EventCharge{
				EventID:     e.ID,
				Description: e.Description,
				Amount:      e.FinalCostPerPerson,
				Key:         eventKey,
				Paid:        in.Payments.IsPaid(eventKey),
			})
		}

		if st.AmountDue == 0 && !st.Paid && len(st.Events) == 0 {
			continue
		}

		report.TotalExpected += st.Expected()
		report.TotalCollected += st.Collected()
		if p.IsMember() {
			report.Members = append(report.Members, st)
		} else {
			report.Guests = append(report.Guests, st)
		}
	}

	sortStatements(report.Members)
	sortStatements(report.Guests)

	report.TotalExpected = roundCents(report.TotalExpected)
	report.TotalCollected = roundCents(report.TotalCollected)
	report.CashBalance = roundCents(cashBalance(in, attendance))
	return report
}

// amountDue is the monthly obligation of p given the match days played.
func amountDue(p models.Player, games int, settings models.FinancialSettings) float64 {
	if p.IsMember() {
		if !p.IsActive {
			return 0
		}
		return settings.MonthlyFee
	}
	return float64(games) * settings.PerGameFee
}

// cashBalance replays every active month up to and including in.Month.
func cashBalance(in FinanceInput, attendance map[models.YearMonth]map[string]int) float64 {
	months := make(map[models.YearMonth]bool)
	for ym := range attendance {
		months[ym] = true
	}
	for key := range in.Payments {
		if ym, _, ok := models.ParseMonthlyKey(key); ok {
			months[ym] = true
		}
	}
	for _, e := range in.Events {
		months[models.YearMonthOf(e.Timestamp, in.Location)] = true
	}

	var replay []models.YearMonth
	for ym := range months {
		if !ym.After(in.Month) {
			replay = append(replay, ym)
		}
	}
	sort.Slice(replay, func(i, j int) bool { return replay[i].Before(replay[j]) })

	balance := 0.0
	for _, ym := range replay {
		balance -= in.Settings.CourtRentalCost
		for _, p := range in.Players {
			if in.Payments.IsPaid(models.MonthlyKey(ym, p.ID)) {
				balance += amountDue(p, attendance[ym][p.ID], in.Settings)
			}
		}
	}

	for _, e := range in.Events {
		if models.YearMonthOf(e.Timestamp, in.Location).After(in.Month) {
			continue
		}
		if e.UseCashBalance {
			balance -= e.CashBalanceUsed
		}
		for _, id := range e.Participants {
			if in.Payments.IsPaid(models.EventKey(e.ID, id)) {
				balance += e.FinalCostPerPerson
			}
		}
	}

	return balance
}

// attendanceByMonth counts, per month and player, the match days played.
func attendanceByMonth(history []models.GameHistory, loc *time.Location) map[models.YearMonth]map[string]int {
	out := make(map[models.YearMonth]map[string]int)
	for _, day := range history {
		ym := models.YearMonthOf(day.Timestamp, loc)
		if out[ym] == nil {
			out[ym] = make(map[string]int)
		}
		seen := make(map[string]bool)
		for _, team := range day.Teams {
			for _, p := range team.Players {
				if !seen[p.ID] {
					seen[p.ID] = true
					out[ym][p.ID]++
				}
			}
		}
	}
	return out
}

func eventsInMonth(events []models.BarbecueEvent, ym models.YearMonth, loc *time.Location) []models.BarbecueEvent {
	var out []models.BarbecueEvent
	for _, e := range events {
		if models.YearMonthOf(e.Timestamp, loc) == ym {
			out = append(out, e)
		}
	}
	return out
}

func sortStatements(statements []PlayerStatement) {
	sort.SliceStable(statements, func(i, j int) bool {
		return strings.ToLower(statements[i].PlayerName) < strings.ToLower(statements[j].PlayerName)
	})
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
