package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

func simpleFee(code, multiplier string) ResolvedFee {
	return ResolvedFee{
		FeeCode:                code,
		FeeName:                code + " Fee",
		WaiverStrategy:         model.WaiverStrategySimpleMultiplier,
		SimpleWaiverMultiplier: dec(multiplier),
		IsPotentiallyWaivable:  true,
	}
}

func tieredFee(code string) ResolvedFee {
	return ResolvedFee{
		FeeCode:               code,
		FeeName:               code + " Fee",
		WaiverStrategy:        model.WaiverStrategyTieredMultiplier,
		IsPotentiallyWaivable: true,
	}
}

// TestEvaluateWaiversSimpleThreshold checks the inclusive uplift threshold:
// min 150 × multiplier 1.0 waives at exactly 150 gallons, not at 140.
func TestEvaluateWaiversSimpleThreshold(t *testing.T) {
	fees := []ResolvedFee{simpleFee("RAMP", "1.0")}

	waived := EvaluateWaivers(dec("150"), dec("150"), fees, nil, false)
	require.Equal(t, WaiverLabelFuelUplift, waived["RAMP"])

	waived = EvaluateWaivers(dec("140"), dec("150"), fees, nil, false)
	require.Empty(t, waived)
}

// TestEvaluateWaiversCAAMultiplier checks the CAA simple-multiplier override:
// members qualify at the reduced threshold and get the CAA label.
func TestEvaluateWaiversCAAMultiplier(t *testing.T) {
	fee := simpleFee("RAMP", "1.0")
	fee.HasCAAOverride = true
	fee.CAASimpleMultiplierOverride = decPtr("0.5")
	fees := []ResolvedFee{fee}

	// 100 gallons is below 150×1.0 but meets 150×0.5.
	waived := EvaluateWaivers(dec("100"), dec("150"), fees, nil, true)
	require.Equal(t, WaiverLabelCAAFuelUplift, waived["RAMP"])

	waived = EvaluateWaivers(dec("100"), dec("150"), fees, nil, false)
	require.Empty(t, waived)
}

// TestEvaluateWaiversTierUnion checks that every qualifying tier contributes
// its fee codes, and non-qualifying tiers contribute nothing.
func TestEvaluateWaiversTierUnion(t *testing.T) {
	fees := []ResolvedFee{tieredFee("RAMP"), tieredFee("HANGAR")}
	tiers := []model.WaiverTier{
		{
			WaiverTierName:                 "Base",
			WaiverTierFuelUpliftMultiplier: dec("1.0"),
			WaiverTierFeesWaivedCodes:      pq.StringArray{"RAMP"},
		},
		{
			WaiverTierName:                 "Premium",
			WaiverTierFuelUpliftMultiplier: dec("2.0"),
			WaiverTierFeesWaivedCodes:      pq.StringArray{"HANGAR"},
		},
	}

	// 1.5× the minimum qualifies the base tier only.
	waived := EvaluateWaivers(dec("150"), dec("100"), fees, tiers, false)
	require.Equal(t, map[string]string{"RAMP": WaiverLabelFuelUplift}, waived)

	// 2× qualifies both; the union covers both codes.
	waived = EvaluateWaivers(dec("200"), dec("100"), fees, tiers, false)
	require.Len(t, waived, 2)
	require.Equal(t, WaiverLabelFuelUplift, waived["HANGAR"])
}

// TestEvaluateWaiversCAATier checks CAA-specific tiers only count for
// members, and label their waivers as CAA.
func TestEvaluateWaiversCAATier(t *testing.T) {
	fees := []ResolvedFee{tieredFee("HANGAR")}
	tiers := []model.WaiverTier{
		{
			WaiverTierName:                 "CAA",
			WaiverTierFuelUpliftMultiplier: dec("1.0"),
			WaiverTierFeesWaivedCodes:      pq.StringArray{"HANGAR"},
			WaiverTierIsCAASpecificTier:    true,
		},
	}

	waived := EvaluateWaivers(dec("150"), dec("100"), fees, tiers, false)
	require.Empty(t, waived)

	waived = EvaluateWaivers(dec("150"), dec("100"), fees, tiers, true)
	require.Equal(t, WaiverLabelCAAFuelUplift, waived["HANGAR"])
}

// TestEvaluateWaiversZeroMinimumDisables checks that a zero or negative
// minimum disables fuel-based waivers entirely.
func TestEvaluateWaiversZeroMinimumDisables(t *testing.T) {
	fees := []ResolvedFee{simpleFee("RAMP", "1.0")}

	waived := EvaluateWaivers(dec("10000"), dec("0"), fees, nil, false)
	require.Empty(t, waived)

	waived = EvaluateWaivers(dec("10000"), dec("-5"), fees, nil, false)
	require.Empty(t, waived)
}

// TestEvaluateWaiversRespectsWaivableFlag checks that fees not flagged as
// potentially waivable never waive, whatever their strategy says.
func TestEvaluateWaiversRespectsWaivableFlag(t *testing.T) {
	fee := simpleFee("INFRA", "1.0")
	fee.IsPotentiallyWaivable = false
	none := simpleFee("SECURITY", "1.0")
	none.WaiverStrategy = model.WaiverStrategyNone

	waived := EvaluateWaivers(dec("1000"), dec("100"), []ResolvedFee{fee, none}, nil, false)
	require.Empty(t, waived)
}

// TestEvaluateWaiversEpsilon checks that float-sourced multipliers that land
// a hair under the threshold still qualify.
func TestEvaluateWaiversEpsilon(t *testing.T) {
	fees := []ResolvedFee{simpleFee("RAMP", "1.0")}

	waived := EvaluateWaivers(dec("149.9999999"), dec("150"), fees, nil, false)
	require.Equal(t, WaiverLabelFuelUplift, waived["RAMP"])

	waived = EvaluateWaivers(dec("149.99"), dec("150"), fees, nil, false)
	require.Empty(t, waived)
}
