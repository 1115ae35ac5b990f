package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReceiptStatusGuards walks the forward-only receipt lifecycle:
// draft → generated → paid, with voiding allowed from generated and paid.
func TestReceiptStatusGuards(t *testing.T) {
	require.True(t, ReceiptStatusDraft.IsMutable())
	require.True(t, ReceiptStatusDraft.CanGenerate())
	require.False(t, ReceiptStatusDraft.CanMarkPaid())
	require.False(t, ReceiptStatusDraft.CanVoid(), "drafts are deleted, not voided")

	require.False(t, ReceiptStatusGenerated.IsMutable())
	require.False(t, ReceiptStatusGenerated.CanGenerate())
	require.True(t, ReceiptStatusGenerated.CanMarkPaid())
	require.True(t, ReceiptStatusGenerated.CanVoid())

	require.False(t, ReceiptStatusPaid.IsMutable())
	require.False(t, ReceiptStatusPaid.CanMarkPaid())
	require.True(t, ReceiptStatusPaid.CanVoid())

	require.False(t, ReceiptStatusVoid.IsMutable())
	require.False(t, ReceiptStatusVoid.CanGenerate())
	require.False(t, ReceiptStatusVoid.CanMarkPaid())
	require.False(t, ReceiptStatusVoid.CanVoid())
}

func TestReceiptStatusIsValid(t *testing.T) {
	for _, s := range []ReceiptStatus{ReceiptStatusDraft, ReceiptStatusGenerated, ReceiptStatusPaid, ReceiptStatusVoid} {
		require.True(t, s.IsValid(), string(s))
	}
	require.False(t, ReceiptStatus("archived").IsValid())
	require.False(t, ReceiptStatus("").IsValid())
}
