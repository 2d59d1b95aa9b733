package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/futmanager/internal/models"
)

func TestCalculateEventCost(t *testing.T) {
	tests := []struct {
		name         string
		costs        models.EventCosts
		participants int
		useCash      bool
		cashDraw     float64
		want         float64
		wantErr      error
	}{
		{
			name:         "cash draw split across participants",
			costs:        models.EventCosts{Meat: 200, Rental: 80, Others: 20},
			participants: 5,
			useCash:      true,
			cashDraw:     50,
			want:         50,
		},
		{
			name:         "draw ignored without cash flag",
			costs:        models.EventCosts{Meat: 90},
			participants: 3,
			useCash:      false,
			cashDraw:     60,
			want:         30,
		},
		{
			name:         "fully funded from cash",
			costs:        models.EventCosts{Meat: 100},
			participants: 4,
			useCash:      true,
			cashDraw:     100,
			want:         0,
		},
		{
			name:         "no participants",
			costs:        models.EventCosts{Meat: 100},
			participants: 0,
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "draw larger than total",
			costs:        models.EventCosts{Meat: 100},
			participants: 2,
			useCash:      true,
			cashDraw:     150,
			wantErr:      ErrInvalidCashDraw,
		},
		{
			name:         "negative draw",
			costs:        models.EventCosts{Meat: 100},
			participants: 2,
			useCash:      true,
			cashDraw:     -1,
			wantErr:      ErrInvalidCashDraw,
		},
		{
			name:         "negative cost",
			costs:        models.EventCosts{Meat: 100, Others: -5},
			participants: 2,
			wantErr:      ErrNegativeCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateEventCost(tt.costs, tt.participants, tt.useCash, tt.cashDraw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CalculateEventCost() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && math.Abs(got-tt.want) > 0.001 {
				t.Errorf("CalculateEventCost() = %v, want %v", got, tt.want)
			}
		})
	}
}
