package service

import (
	"time"

	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/internal/calculator"
	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/pkg/api"
)

// dateLayout renders match-day and event dates as DD/MM/YYYY.
const dateLayout = "02/01/2006"

func dateString(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format(dateLayout)
}

func toAPIPlayer(p models.Player) *api.Player {
	return &api.Player{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		VestNumber:   p.VestNumber,
		PhotoURL:     p.PhotoURL,
		IsGoalkeeper: p.IsGoalkeeper,
		Type:         string(p.Type),
		SponsorID:    p.SponsorID,
		Stars:        p.Stars,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func toAPIPlayers(players []models.Player) []*api.Player {
	out := make([]*api.Player, len(players))
	for i, p := range players {
		out[i] = toAPIPlayer(p)
	}
	return out
}

func fromAPIPlayer(p *api.Player) models.Player {
	return models.Player{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		VestNumber:   p.VestNumber,
		PhotoURL:     p.PhotoURL,
		IsGoalkeeper: p.IsGoalkeeper,
		Type:         models.PlayerType(p.Type),
		SponsorID:    p.SponsorID,
		Stars:        p.Stars,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func toAPITeams(teams []models.Team) []*api.Team {
	out := make([]*api.Team, len(teams))
	for i, t := range teams {
		out[i] = &api.Team{
			ID:           t.ID,
			Name:         t.Name,
			Players:      toAPIPlayers(t.Players),
			AverageStars: t.AverageStars,
			TotalStars:   t.TotalStars,
		}
	}
	return out
}

func toAPIMatches(matches []models.Match) []*api.Match {
	if len(matches) == 0 {
		return nil
	}
	out := make([]*api.Match, len(matches))
	for i, m := range matches {
		out[i] = &api.Match{
			ID:        m.ID,
			TeamAID:   m.TeamAID,
			TeamBID:   m.TeamBID,
			ScoreA:    m.ScoreA,
			ScoreB:    m.ScoreB,
			Timestamp: m.Timestamp,
		}
	}
	return out
}

func toAPIGameHistory(g models.GameHistory) *api.GameHistory {
	return &api.GameHistory{
		ID:         g.ID,
		Timestamp:  g.Timestamp,
		DateString: g.DateString,
		Teams:      toAPITeams(g.Teams),
		Matches:    toAPIMatches(g.Matches),
		Stats: api.GameStats{
			TotalPlayers:   g.Stats.TotalPlayers,
			AverageBalance: g.Stats.AverageBalance,
		},
	}
}

func toAPIPerformance(p models.Player, perf balancer.Performance) *api.PlayerPerformance {
	return &api.PlayerPerformance{
		PlayerID: p.ID,
		Name:     p.Name,
		Wins:     perf.Wins,
		Draws:    perf.Draws,
		Losses:   perf.Losses,
		WinRate:  models.RoundTenth(perf.WinRate() * 100),
		Modifier: models.RoundTenth(perf.Modifier()),
	}
}

func fromAPICosts(c *api.EventCosts) models.EventCosts {
	if c == nil {
		return models.EventCosts{}
	}
	return models.EventCosts{Meat: c.Meat, Rental: c.Rental, Others: c.Others}
}

func toAPIEvent(e models.BarbecueEvent) *api.BarbecueEvent {
	return &api.BarbecueEvent{
		ID:                 e.ID,
		DateString:         e.DateString,
		Timestamp:          e.Timestamp,
		Description:        e.Description,
		Participants:       append([]string{}, e.Participants...),
		Costs:              &api.EventCosts{Meat: e.Costs.Meat, Rental: e.Costs.Rental, Others: e.Costs.Others},
		UseCashBalance:     e.UseCashBalance,
		CashBalanceUsed:    e.CashBalanceUsed,
		FinalCostPerPerson: e.FinalCostPerPerson,
	}
}

func toAPISettings(s models.FinancialSettings) *api.FinancialSettings {
	return &api.FinancialSettings{
		MonthlyFee:      s.MonthlyFee,
		PerGameFee:      s.PerGameFee,
		CourtRentalCost: s.CourtRentalCost,
	}
}

func fromAPISettings(s *api.FinancialSettings) models.FinancialSettings {
	return models.FinancialSettings{
		MonthlyFee:      s.MonthlyFee,
		PerGameFee:      s.PerGameFee,
		CourtRentalCost: s.CourtRentalCost,
	}
}

func toAPIStatements(statements []calculator.PlayerStatement) []*api.PlayerStatement {
	out := make([]*api.PlayerStatement, len(statements))
	for i, st := range statements {
		s := &api.PlayerStatement{
			PlayerID:    st.PlayerID,
			PlayerName:  st.PlayerName,
			Type:        string(st.Type),
			Active:      st.Active,
			SponsorID:   st.SponsorID,
			SponsorName: st.SponsorName,
			GamesPlayed: st.GamesPlayed,
			AmountDue:   st.AmountDue,
			Key:         st.Key,
			Paid:        st.Paid,
		}
		for _, e := range st.Events {
			s.Events = append(s.Events, &api.EventCharge{
				EventID:     e.EventID,
				Description: e.Description,
				Amount:      e.Amount,
				Key:         e.Key,
				Paid:        e.Paid,
			})
		}
		out[i] = s
	}
	return out
}

func toAPIReport(r calculator.MonthlyReport) *api.MonthlyReport {
	return &api.MonthlyReport{
		Year:           r.Month.Year,
		Month:          int(r.Month.Month),
		Members:        toAPIStatements(r.Members),
		Guests:         toAPIStatements(r.Guests),
		TotalExpected:  r.TotalExpected,
		TotalCollected: r.TotalCollected,
		CashBalance:    r.CashBalance,
	}
}
