package journal

// Summary holds the scalar performance metrics over a trade collection.
// AvgWin, AvgLoss and ProfitFactor are computed in the unit selected by the
// display mode; TotalProfit and TotalProfitRR are always carried in both
// units.
type Summary struct {
	TotalTrades   int     `json:"total_trades"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	TotalProfit   float64 `json:"total_profit"`
	TotalProfitRR float64 `json:"total_profit_rr"`
	AvgWin        float64 `json:"avg_win"`
	AvgLoss       float64 `json:"avg_loss"`
	ProfitFactor  float64 `json:"profit_factor"`
}

// Summarize reduces a trade collection to its summary metrics. The result
// is order independent; all operations are counts and sums.
//
// ProfitFactor is 0 whenever there is no gross loss, including a loss-free
// record. JSON cannot carry an infinite value, so clients must combine it
// with Wins/Losses to tell a perfect record from an empty one.
func Summarize(trades []Trade, mode DisplayMode) Summary {
	s := Summary{TotalTrades: len(trades)}

	var winSum, lossSum float64
	for _, t := range trades {
		s.TotalProfit += t.Profit
		s.TotalProfitRR += t.ProfitRR
		if t.IsWin {
			s.Wins++
			winSum += t.Value(mode)
		} else {
			lossSum += t.Value(mode)
		}
	}
	s.Losses = s.TotalTrades - s.Wins

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
	if s.Wins > 0 {
		s.AvgWin = winSum / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = lossSum / float64(s.Losses)
		if s.AvgLoss < 0 {
			s.AvgLoss = -s.AvgLoss
		}
	}
	if s.AvgLoss > 0 {
		s.ProfitFactor = (s.AvgWin * float64(s.Wins)) / (s.AvgLoss * float64(s.Losses))
	}
	return s
}
