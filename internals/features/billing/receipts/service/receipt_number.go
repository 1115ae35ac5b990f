package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Receipt numbers are unique per FBO per UTC day: R-YYYYMMDD-NNNN, with the
// 4-digit sequence restarting at 0001 each day.

// FormatReceiptNumber renders the number for a given day and sequence.
func FormatReceiptNumber(day time.Time, seq int) string {
	return fmt.Sprintf("R-%s-%04d", day.UTC().Format("20060102"), seq)
}

// ReceiptNumberDayPrefix returns the LIKE prefix for one day's numbers.
func ReceiptNumberDayPrefix(day time.Time) string {
	return fmt.Sprintf("R-%s-", day.UTC().Format("20060102"))
}

// ParseReceiptNumberSequence extracts the NNNN sequence from a receipt
// number; returns 0 for anything that does not match the format.
func ParseReceiptNumberSequence(number string) int {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return 0
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}

// NextReceiptNumber computes the next number for a day given the highest
// existing number for that day ("" when the day has none).
func NextReceiptNumber(day time.Time, highestExisting string) string {
	return FormatReceiptNumber(day, ParseReceiptNumberSequence(highestExisting)+1)
}
