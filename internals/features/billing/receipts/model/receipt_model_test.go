package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Listing filters by tail number straight on receipts, so the snapshot
// column has to exist on the table.
func TestReceiptSchemaHasTailNumberSnapshotColumn(t *testing.T) {
	s, err := schema.Parse(&Receipt{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	f, ok := s.FieldsByDBName["receipt_aircraft_tail_number_at_receipt_time"]
	require.True(t, ok, "receipts is missing the tail number snapshot column")
	require.Equal(t, "ReceiptAircraftTailNumberAtReceiptTime", f.Name)
}
