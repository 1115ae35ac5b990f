package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	model "fbofuel_backend/internals/features/billing/versions/model"
	service "fbofuel_backend/internals/features/billing/versions/service"
)

// The list DTO carries every column except the configuration payload.
func TestToVersionListItem(t *testing.T) {
	desc := "before summer rate change"
	m := model.FeeScheduleVersion{
		FeeScheduleVersionID:              uuid.New(),
		FeeScheduleVersionFBOLocationID:   uuid.New(),
		FeeScheduleVersionName:            "Pre-summer 2024",
		FeeScheduleVersionDescription:     &desc,
		FeeScheduleVersionCreatedByUserID: uuid.New(),
		FeeScheduleVersionCreatedAt:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	got := ToVersionListItem(m)

	require.Equal(t, m.FeeScheduleVersionID, got.FeeScheduleVersionID)
	require.Equal(t, m.FeeScheduleVersionFBOLocationID, got.FeeScheduleVersionFBOLocationID)
	require.Equal(t, m.FeeScheduleVersionName, got.FeeScheduleVersionName)
	require.Equal(t, m.FeeScheduleVersionDescription, got.FeeScheduleVersionDescription)
	require.Equal(t, m.FeeScheduleVersionCreatedByUserID, got.FeeScheduleVersionCreatedByUserID)
	require.Equal(t, m.FeeScheduleVersionCreatedAt, got.FeeScheduleVersionCreatedAt)
}

func TestToRestoreResult(t *testing.T) {
	diff := service.ConfigDiff{
		"fee_rules": {
			Create: []map[string]any{{"fee_rule_fee_code": "RAMP"}},
			Update: []map[string]any{{"fee_rule_fee_code": "INFRA"}, {"fee_rule_fee_code": "GPU"}},
		},
		"waiver_tiers": {
			Delete: []any{"gold-tier-id"},
		},
	}

	got := ToRestoreResult(diff)

	require.True(t, got.Restored)
	require.Equal(t, map[string]int{"fee_rules": 1}, got.Created)
	require.Equal(t, map[string]int{"fee_rules": 2}, got.Updated)
	require.Equal(t, map[string]int{"waiver_tiers": 1}, got.Deleted)
}

func TestToRestoreResultEmptyDiff(t *testing.T) {
	got := ToRestoreResult(service.ConfigDiff{})

	require.False(t, got.Restored)
	require.Empty(t, got.Created)
	require.Empty(t, got.Updated)
	require.Empty(t, got.Deleted)
}
