package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatReceiptNumber(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	require.Equal(t, "R-20240315-0001", FormatReceiptNumber(day, 1))
	require.Equal(t, "R-20240315-0042", FormatReceiptNumber(day, 42))
	require.Equal(t, "R-20240315-10000", FormatReceiptNumber(day, 10000))
}

// TestFormatReceiptNumberUsesUTC checks the day prefix never shifts with the
// local zone of the passed time.
func TestFormatReceiptNumberUsesUTC(t *testing.T) {
	// 23:30 on Mar 15 in UTC-5 is already Mar 16 in UTC.
	est := time.FixedZone("EST", -5*60*60)
	day := time.Date(2024, 3, 15, 23, 30, 0, 0, est)
	require.Equal(t, "R-20240316-0001", FormatReceiptNumber(day, 1))
}

func TestParseReceiptNumberSequence(t *testing.T) {
	require.Equal(t, 1, ParseReceiptNumberSequence("R-20240315-0001"))
	require.Equal(t, 137, ParseReceiptNumberSequence("R-20240315-0137"))
	require.Equal(t, 0, ParseReceiptNumberSequence(""))
	require.Equal(t, 0, ParseReceiptNumberSequence("R-20240315"))
	require.Equal(t, 0, ParseReceiptNumberSequence("R-20240315-xyz"))
}

// TestNextReceiptNumber checks the per-day sequence: continue from the
// highest existing number, restart at 0001 on a day with none.
func TestNextReceiptNumber(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "R-20240315-0001", NextReceiptNumber(day, ""))
	require.Equal(t, "R-20240315-0008", NextReceiptNumber(day, "R-20240315-0007"))

	nextDay := day.AddDate(0, 0, 1)
	require.Equal(t, "R-20240316-0001", NextReceiptNumber(nextDay, ""))
}

func TestReceiptNumberDayPrefix(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "R-20240315-", ReceiptNumberDayPrefix(day))
}
