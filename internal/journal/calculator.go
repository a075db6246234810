package journal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidInput is returned for any trade input that is missing, out of
// range, or degenerate. No partial Trade is ever produced alongside it.
var ErrInvalidInput = errors.New("invalid trade input")

const (
	maxPairLength  = 20
	minRiskPercent = 0.01
	maxRiskPercent = 100
	minRRValue     = -100
	maxRRValue     = 1000

	// simpleModeRisk is the fixed 1% risk convention for simple entries,
	// independent of the user's configured default risk percent.
	simpleModeRisk = 0.01
)

// DetailedInput holds the raw fields of a price-based trade entry.
type DetailedInput struct {
	Pair           string
	Entry          float64
	Exit           float64
	StopLoss       float64
	TakeProfit     float64 // optional, 0 means unset
	AccountBalance float64
	RiskPercent    float64
	Date           time.Time
}

// SimpleInput holds the raw fields of a risk-multiple trade entry.
type SimpleInput struct {
	Pair           string
	RRValue        float64
	AccountBalance float64
	Date           time.Time
}

// CalculateDetailed turns a price-based entry into a Trade.
//
// Position size is derived from the risked fraction of the account balance
// and the entry-to-stop distance. Profit uses the long convention, exit
// above entry is profit; the RR sign is taken from the same exit-entry
// comparison, so Profit and ProfitRR always agree in sign. IsWin is derived
// from Profit alone.
func CalculateDetailed(in DetailedInput) (Trade, error) {
	if err := validatePair(in.Pair); err != nil {
		return Trade{}, err
	}
	if err := validateDate(in.Date); err != nil {
		return Trade{}, err
	}
	for name, price := range map[string]float64{
		"entry price": in.Entry,
		"exit price":  in.Exit,
		"stop loss":   in.StopLoss,
	} {
		if !isFinite(price) || price <= 0 {
			return Trade{}, fmt.Errorf("%w: %s must be positive", ErrInvalidInput, name)
		}
	}
	if in.TakeProfit != 0 && (!isFinite(in.TakeProfit) || in.TakeProfit < 0) {
		return Trade{}, fmt.Errorf("%w: take profit must be positive", ErrInvalidInput)
	}
	if !isFinite(in.AccountBalance) || in.AccountBalance <= 0 {
		return Trade{}, fmt.Errorf("%w: account balance must be positive", ErrInvalidInput)
	}
	if !isFinite(in.RiskPercent) || in.RiskPercent < minRiskPercent || in.RiskPercent > maxRiskPercent {
		return Trade{}, fmt.Errorf("%w: risk percent must be between %v and %v",
			ErrInvalidInput, minRiskPercent, maxRiskPercent)
	}

	entryToStop := math.Abs(in.Entry - in.StopLoss)
	if entryToStop == 0 {
		return Trade{}, fmt.Errorf("%w: entry price equals stop loss", ErrInvalidInput)
	}

	riskAmount := in.AccountBalance * in.RiskPercent / 100
	positionSize := riskAmount / entryToStop
	profit := (in.Exit - in.Entry) * positionSize

	rewardPerUnit := math.Abs(in.Exit - in.Entry)
	profitRR := rewardPerUnit / entryToStop
	if in.Exit < in.Entry {
		profitRR = -profitRR
	}

	return Trade{
		Pair:           strings.TrimSpace(in.Pair),
		EntryMethod:    EntryMethodDetailed,
		Entry:          in.Entry,
		Exit:           in.Exit,
		StopLoss:       in.StopLoss,
		TakeProfit:     in.TakeProfit,
		Size:           positionSize,
		Profit:         profit,
		ProfitRR:       profitRR,
		IsWin:          profit > 0,
		Date:           dateOnly(in.Date),
		AccountBalance: in.AccountBalance,
		RiskPercent:    in.RiskPercent,
	}, nil
}

// CalculateSimple turns a risk-multiple entry into a Trade. 1R is fixed at
// 1% of the account balance; Size holds the risk amount, not a position
// size. An RR of exactly zero counts as a non-win.
func CalculateSimple(in SimpleInput) (Trade, error) {
	if err := validatePair(in.Pair); err != nil {
		return Trade{}, err
	}
	if err := validateDate(in.Date); err != nil {
		return Trade{}, err
	}
	if !isFinite(in.RRValue) || in.RRValue < minRRValue || in.RRValue > maxRRValue {
		return Trade{}, fmt.Errorf("%w: rr value must be between %v and %v",
			ErrInvalidInput, minRRValue, maxRRValue)
	}
	if !isFinite(in.AccountBalance) || in.AccountBalance <= 0 {
		return Trade{}, fmt.Errorf("%w: account balance must be positive", ErrInvalidInput)
	}

	oneR := in.AccountBalance * simpleModeRisk

	return Trade{
		Pair:           strings.TrimSpace(in.Pair),
		EntryMethod:    EntryMethodSimple,
		Size:           oneR,
		Profit:         in.RRValue * oneR,
		ProfitRR:       in.RRValue,
		IsWin:          in.RRValue > 0,
		Date:           dateOnly(in.Date),
		AccountBalance: in.AccountBalance,
	}, nil
}

func validatePair(pair string) error {
	trimmed := strings.TrimSpace(pair)
	if trimmed == "" {
		return fmt.Errorf("%w: trading pair is required", ErrInvalidInput)
	}
	if len(trimmed) > maxPairLength {
		return fmt.Errorf("%w: trading pair must be at most %d characters", ErrInvalidInput, maxPairLength)
	}
	return nil
}

func validateDate(d time.Time) error {
	if d.IsZero() {
		return fmt.Errorf("%w: trade date is required", ErrInvalidInput)
	}
	if dateOnly(d).After(dateOnly(time.Now().UTC())) {
		return fmt.Errorf("%w: trade date cannot be in the future", ErrInvalidInput)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
