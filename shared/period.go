package shared

import "fmt"

// Period represents the span of market history requested for a quote. Values
// are passed through verbatim to the data provider.
type Period string

const (
	PeriodOneDay     Period = "1d"
	PeriodFiveDay    Period = "5d"
	PeriodOneMonth   Period = "1mo"
	PeriodThreeMonth Period = "3mo"
	PeriodSixMonth   Period = "6mo"
	PeriodOneYear    Period = "1y"
	PeriodFiveYear   Period = "5y"
	PeriodYearToDate Period = "ytd"
	PeriodMax        Period = "max"
)

// Interval represents the sampling granularity of the requested history.
type Interval string

const (
	IntervalOneMinute     Interval = "1m"
	IntervalFiveMinute    Interval = "5m"
	IntervalFifteenMinute Interval = "15m"
	IntervalThirtyMinute  Interval = "30m"
	IntervalOneHour       Interval = "1h"
	IntervalOneDay        Interval = "1d"
)

// ParsePeriod validates the provided period string.
func ParsePeriod(period string) (Period, error) {
	switch Period(period) {
	case PeriodOneDay, PeriodFiveDay, PeriodOneMonth, PeriodThreeMonth,
		PeriodSixMonth, PeriodOneYear, PeriodFiveYear, PeriodYearToDate, PeriodMax:
		return Period(period), nil
	default:
		return "", fmt.Errorf("unknown period provided: %s", period)
	}
}

// ParseInterval validates the provided interval string.
func ParseInterval(interval string) (Interval, error) {
	switch Interval(interval) {
	case IntervalOneMinute, IntervalFiveMinute, IntervalFifteenMinute,
		IntervalThirtyMinute, IntervalOneHour, IntervalOneDay:
		return Interval(interval), nil
	default:
		return "", fmt.Errorf("unknown interval provided: %s", interval)
	}
}
