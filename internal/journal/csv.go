package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed interchange column order. Import and export both
// depend on it; do not reorder.
var csvHeader = []string{
	"Date", "Pair", "Entry Method", "Entry Price", "Exit Price",
	"Stop Loss", "Take Profit", "Size", "Profit ($)", "Profit (RR)",
	"Win/Loss", "Account Balance",
}

const csvDateLayout = "2006-01-02"

// ImportResult reports the outcome of a CSV import. Rows that are short or
// unparseable are skipped without aborting the rest of the file, but they
// are counted so partial imports are visible to the caller.
type ImportResult struct {
	Trades  []Trade
	Skipped int
}

// ExportCSV writes the trade collection in the fixed interchange format,
// header first.
func ExportCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			t.Date.Format(csvDateLayout),
			t.Pair,
			string(t.EntryMethod),
			optF(t.Entry),
			optF(t.Exit),
			optF(t.StopLoss),
			optF(t.TakeProfit),
			f(t.Size),
			f(t.Profit),
			f(t.ProfitRR),
			winLoss(t.IsWin),
			f(t.AccountBalance),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads trades from the fixed interchange format. The header row
// is skipped; each data row needs at least 12 fields. The Win/Loss column
// is the literal "Win" for a win, anything else is a loss.
func ImportCSV(r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var res ImportResult
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			continue
		}
		if first {
			first = false
			continue
		}
		t, ok := parseRow(row)
		if !ok {
			res.Skipped++
			continue
		}
		res.Trades = append(res.Trades, t)
	}
	return res, nil
}

func parseRow(row []string) (Trade, bool) {
	if len(row) < len(csvHeader) {
		return Trade{}, false
	}

	date, err := time.Parse(csvDateLayout, row[0])
	if err != nil {
		return Trade{}, false
	}
	size, err := strconv.ParseFloat(row[7], 64)
	if err != nil {
		return Trade{}, false
	}
	profit, err := strconv.ParseFloat(row[8], 64)
	if err != nil {
		return Trade{}, false
	}
	profitRR, err := strconv.ParseFloat(row[9], 64)
	if err != nil {
		return Trade{}, false
	}
	balance, err := strconv.ParseFloat(row[11], 64)
	if err != nil {
		return Trade{}, false
	}

	method := EntryMethodDetailed
	if row[2] == string(EntryMethodSimple) {
		method = EntryMethodSimple
	}

	return Trade{
		Pair:           row[1],
		EntryMethod:    method,
		Entry:          parseOptF(row[3]),
		Exit:           parseOptF(row[4]),
		StopLoss:       parseOptF(row[5]),
		TakeProfit:     parseOptF(row[6]),
		Size:           size,
		Profit:         profit,
		ProfitRR:       profitRR,
		IsWin:          row[10] == "Win",
		Date:           date,
		AccountBalance: balance,
	}, true
}

func winLoss(isWin bool) string {
	if isWin {
		return "Win"
	}
	return "Loss"
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// optF renders optional price fields, leaving unset (zero) values empty.
func optF(x float64) string {
	if x == 0 {
		return ""
	}
	return f(x)
}

// parseOptF reads optional price fields; empty or malformed cells stay
// unset rather than failing the row.
func parseOptF(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
