package journal

import "time"

// DayBucket is the rollup for a single calendar day. Value and Cumulative
// are in the unit selected by the projection's display mode; Cumulative is
// the running sum across the month in day order.
type DayBucket struct {
	Day        int     `json:"day"`
	Trades     int     `json:"trades"`
	Profit     float64 `json:"profit"`
	ProfitRR   float64 `json:"profit_rr"`
	Value      float64 `json:"value"`
	Cumulative float64 `json:"cumulative"`
}

// WeekBucket is the rollup for a Sunday-aligned 7-day window.
type WeekBucket struct {
	Start    time.Time `json:"start"`
	Trades   int       `json:"trades"`
	Profit   float64   `json:"profit"`
	ProfitRR float64   `json:"profit_rr"`
	Wins     int       `json:"wins"`
	Losses   int       `json:"losses"`
	WinRate  float64   `json:"win_rate"`
}

// MonthView is the calendar projection of a trade collection onto one
// month: per-day buckets with a cumulative P&L series, week windows
// overlapping the month, and a whole-month rollup.
type MonthView struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Days  []DayBucket  `json:"days"`
	Weeks []WeekBucket `json:"weeks"`
	Total MonthSummary `json:"total"`
}

// MonthSummary is the rollup over all trades dated within the month.
type MonthSummary struct {
	Trades   int     `json:"trades"`
	Profit   float64 `json:"profit"`
	ProfitRR float64 `json:"profit_rr"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRate  float64 `json:"win_rate"`
}

// maxWeekWindows bounds the Sunday-aligned windows slid over a month; six
// windows always cover a 31-day month regardless of its starting weekday.
const maxWeekWindows = 6

// ProjectMonth buckets trades by calendar day within the given month and by
// Sunday-aligned week windows starting from the Sunday on or before the
// 1st. A window is kept when its start or its end falls in the month, so a
// week spanning two months shows up in both month views; that duplication
// is intentional for a rolling weekly view.
func ProjectMonth(trades []Trade, year int, month time.Month, mode DisplayMode) MonthView {
	view := MonthView{Year: year, Month: month}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	var cumulative float64
	view.Days = make([]DayBucket, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		bucket := DayBucket{Day: day}
		for _, t := range trades {
			if !t.sameDay(year, month, day) {
				continue
			}
			bucket.Trades++
			bucket.Profit += t.Profit
			bucket.ProfitRR += t.ProfitRR
			bucket.Value += t.Value(mode)
		}
		cumulative += bucket.Value
		bucket.Cumulative = cumulative
		view.Days = append(view.Days, bucket)
	}

	firstSunday := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))
	for i := 0; i < maxWeekWindows; i++ {
		start := firstSunday.AddDate(0, 0, i*7)
		end := start.AddDate(0, 0, 6)
		if start.Month() != month && end.Month() != month {
			continue
		}
		view.Weeks = append(view.Weeks, projectWeek(trades, start, end))
	}

	view.Total = summarizeMonth(trades, year, month)
	return view
}

func projectWeek(trades []Trade, start, end time.Time) WeekBucket {
	w := WeekBucket{Start: start}
	for _, t := range trades {
		d := dateOnly(t.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		w.Trades++
		w.Profit += t.Profit
		w.ProfitRR += t.ProfitRR
		if t.IsWin {
			w.Wins++
		} else {
			w.Losses++
		}
	}
	if w.Trades > 0 {
		w.WinRate = float64(w.Wins) / float64(w.Trades) * 100
	}
	return w
}

func summarizeMonth(trades []Trade, year int, month time.Month) MonthSummary {
	var m MonthSummary
	for _, t := range trades {
		y, mo, _ := t.Date.Date()
		if y != year || mo != month {
			continue
		}
		m.Trades++
		m.Profit += t.Profit
		m.ProfitRR += t.ProfitRR
		if t.IsWin {
			m.Wins++
		} else {
			m.Losses++
		}
	}
	if m.Trades > 0 {
		m.WinRate = float64(m.Wins) / float64(m.Trades) * 100
	}
	return m
}
