package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	assert.Equal(t,
		"Date,Pair,Entry Method,Entry Price,Exit Price,Stop Loss,Take Profit,Size,Profit ($),Profit (RR),Win/Loss,Account Balance",
		strings.TrimSpace(buf.String()))
}

func TestCSVRoundTrip(t *testing.T) {
	detailed, err := CalculateDetailed(DetailedInput{
		Pair:           "EURUSD",
		Entry:          1.1000,
		Exit:           1.1100,
		StopLoss:       1.0950,
		TakeProfit:     1.1200,
		AccountBalance: 100000,
		RiskPercent:    1,
		Date:           time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	simple, err := CalculateSimple(SimpleInput{
		Pair:           "XAUUSD",
		RRValue:        -1.5,
		AccountBalance: 100000,
		Date:           time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, []Trade{detailed, simple}))

	res, err := ImportCSV(&buf)
	require.NoError(t, err)
	require.Len(t, res.Trades, 2)
	assert.Zero(t, res.Skipped)

	got := res.Trades[0]
	assert.Equal(t, detailed.Pair, got.Pair)
	assert.Equal(t, detailed.EntryMethod, got.EntryMethod)
	assert.InDelta(t, detailed.Entry, got.Entry, 1e-9)
	assert.InDelta(t, detailed.Profit, got.Profit, 1e-6)
	assert.InDelta(t, detailed.ProfitRR, got.ProfitRR, 1e-6)
	assert.Equal(t, detailed.IsWin, got.IsWin)
	assert.Equal(t, detailed.Date, got.Date)

	got = res.Trades[1]
	assert.Equal(t, EntryMethodSimple, got.EntryMethod)
	assert.Zero(t, got.Entry)
	assert.InDelta(t, simple.Profit, got.Profit, 1e-6)
	assert.False(t, got.IsWin)
}

func TestImportCSVSkipsShortRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Pair,Entry Method,Entry Price,Exit Price,Stop Loss,Take Profit,Size,Profit ($),Profit (RR),Win/Loss,Account Balance",
		`"2025-03-10","EURUSD","simple","","","","","1000","2000","2","Win","100000"`,
		`"2025-03-11","too","short"`,
		`"not-a-date","EURUSD","simple","","","","","1000","2000","2","Win","100000"`,
		`"2025-03-12","GBPUSD","simple","","","","","500","-500","-1","Loss","50000"`,
	}, "\n")

	res, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Trades, 2)
	assert.Equal(t, 2, res.Skipped)

	assert.Equal(t, "EURUSD", res.Trades[0].Pair)
	assert.True(t, res.Trades[0].IsWin)
	assert.Equal(t, "GBPUSD", res.Trades[1].Pair)
	assert.False(t, res.Trades[1].IsWin)
	assert.InDelta(t, 50000, res.Trades[1].AccountBalance, 1e-9)
}

func TestImportCSVWinLossColumn(t *testing.T) {
	input := strings.Join([]string{
		"Date,Pair,Entry Method,Entry Price,Exit Price,Stop Loss,Take Profit,Size,Profit ($),Profit (RR),Win/Loss,Account Balance",
		`2025-03-10,EURUSD,simple,,,,,1000,2000,2,Win,100000`,
		`2025-03-11,EURUSD,simple,,,,,1000,-1000,-1,anything,100000`,
	}, "\n")

	res, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, res.Trades, 2)

	assert.True(t, res.Trades[0].IsWin)
	assert.False(t, res.Trades[1].IsWin)
}
