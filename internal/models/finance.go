package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FinancialSettings holds the group's pricing.
type FinancialSettings struct {
	// MonthlyFee is the due charged to every active recurring member.
	MonthlyFee float64 `json:"monthlyFee"`

	// PerGameFee is charged to guests per match day attended.
	PerGameFee float64 `json:"perGameFee"`

	// CourtRentalCost is paid from the shared cash once per active month,
	// regardless of attendance.
	CourtRentalCost float64 `json:"courtRentalCost"`
}

// DefaultFinancialSettings returns the settings used when none are stored.
func DefaultFinancialSettings() FinancialSettings {
	return FinancialSettings{MonthlyFee: 100, PerGameFee: 25, CourtRentalCost: 0}
}

// Validate rejects negative amounts.
func (s FinancialSettings) Validate() error {
	if s.MonthlyFee < 0 || s.PerGameFee < 0 || s.CourtRentalCost < 0 {
		return fmt.Errorf("financial settings cannot be negative")
	}
	return nil
}

// YearMonth identifies a calendar month. Month is 1-12.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewYearMonth returns the YearMonth for the given year and month.
func NewYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// YearMonthOf buckets a Unix millisecond timestamp into its month in loc.
// A nil loc means UTC.
func YearMonthOf(ms int64, loc *time.Location) YearMonth {
	if loc == nil {
		loc = time.UTC
	}
	t := time.UnixMilli(ms).In(loc)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Valid reports whether the month is within 1-12.
func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

// Before reports whether ym is strictly earlier than o.
func (ym YearMonth) Before(o YearMonth) bool {
	if ym.Year != o.Year {
		return ym.Year < o.Year
	}
	return ym.Month < o.Month
}

// After reports whether ym is strictly later than o.
func (ym YearMonth) After(o YearMonth) bool {
	return o.Before(ym)
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// eventKeyPrefix marks event-share obligation keys.
const eventKeyPrefix = "BBQ-"

// MonthlyKey returns the obligation key of a player's monthly due or
// per-game fees: "{year}-{monthIndex}-{playerId}" with a 0-based month index.
func MonthlyKey(ym YearMonth, playerID string) string {
	return fmt.Sprintf("%d-%d-%s", ym.Year, int(ym.Month)-1, playerID)
}

// EventKey returns the obligation key of a player's share of an event:
// "BBQ-{eventId}-{playerId}".
func EventKey(eventID, playerID string) string {
	return eventKeyPrefix + eventID + "-" + playerID
}

// ParseMonthlyKey splits a monthly obligation key. It returns false for
// event keys, anything malformed and non-canonical spellings such as
// leading zeros or signs.
func ParseMonthlyKey(key string) (YearMonth, string, bool) {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 || parts[2] == "" {
		return YearMonth{}, "", false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, "", false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 || index > 11 {
		return YearMonth{}, "", false
	}
	ym := YearMonth{Year: year, Month: time.Month(index + 1)}
	// Only the canonical spelling matches the keys the report looks up
	if MonthlyKey(ym, parts[2]) != key {
		return YearMonth{}, "", false
	}
	return ym, parts[2], true
}

// IsEventKey reports whether key has the event obligation shape.
func IsEventKey(key string) bool {
	return strings.HasPrefix(key, eventKeyPrefix) && len(key) > len(eventKeyPrefix)
}

// ValidPaymentKey reports whether key has either obligation shape.
func ValidPaymentKey(key string) bool {
	if IsEventKey(key) {
		return true
	}
	_, _, ok := ParseMonthlyKey(key)
	return ok
}

// PaymentRegistry maps obligation keys to "paid". A missing key means unpaid.
// Keys are never pruned when the match day or event they refer to is deleted.
type PaymentRegistry map[string]bool

// IsPaid reports whether key is marked paid.
func (r PaymentRegistry) IsPaid(key string) bool {
	return r[key]
}

// Toggle flips key: a paid key is removed, an unpaid one is set.
func (r PaymentRegistry) Toggle(key string) {
	if r[key] {
		delete(r, key)
		return
	}
	r[key] = true
}
