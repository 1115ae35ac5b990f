package service

import (
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

// Waiver description labels, surfaced on WAIVER line items as
// "<label> Waiver (<fee name>)".
const (
	WaiverLabelFuelUplift    = "Fuel Uplift"
	WaiverLabelCAAFuelUplift = "CAA Fuel Uplift"
)

// thresholdEpsilon absorbs binary round-off when multipliers arrive from
// floating-point sources; monetary amounts stay decimal-exact.
var thresholdEpsilon = decimal.New(1, -6)

func meetsThreshold(uplift, threshold decimal.Decimal) bool {
	if uplift.Cmp(threshold) >= 0 {
		return true
	}
	return threshold.Sub(uplift).Abs().Cmp(thresholdEpsilon) < 0
}

// EvaluateWaivers returns fee_code → waiver label for every fee whose
// fuel-uplift conditions are met.
//
// Two mechanisms combine:
//   - SIMPLE_MULTIPLIER: the fee waives iff uplift >= min × multiplier,
//     with the CAA multiplier when the customer is a member and the rule
//     carries a CAA waiver override.
//   - TIERED_MULTIPLIER: the fee waives if its code appears in the fee list
//     of ANY qualifying tier (uplift >= min × tier multiplier). Qualifying
//     tiers union their lists; CAA-specific tiers only count for members.
//
// minForWaiver == 0 disables fuel-based waivers entirely (the threshold is
// meaningless, not trivially satisfied).
func EvaluateWaivers(uplift, minForWaiver decimal.Decimal, fees []ResolvedFee, tiers []model.WaiverTier, isCAAMember bool) map[string]string {
	waived := make(map[string]string)
	if minForWaiver.Sign() <= 0 {
		return waived
	}

	// Union of fee codes across qualifying tiers.
	tierCodes := make(map[string]bool)
	tierCodeIsCAA := make(map[string]bool)
	for i := range tiers {
		t := &tiers[i]
		if t.WaiverTierIsCAASpecificTier && !isCAAMember {
			continue
		}
		threshold := minForWaiver.Mul(t.WaiverTierFuelUpliftMultiplier)
		if !meetsThreshold(uplift, threshold) {
			continue
		}
		for _, code := range t.WaiverTierFeesWaivedCodes {
			tierCodes[code] = true
			if t.WaiverTierIsCAASpecificTier {
				tierCodeIsCAA[code] = true
			}
		}
	}

	for _, fee := range fees {
		if !fee.IsPotentiallyWaivable {
			continue
		}
		switch fee.EffectiveWaiverStrategy(isCAAMember) {
		case model.WaiverStrategySimpleMultiplier:
			multiplier := fee.EffectiveSimpleMultiplier(isCAAMember)
			if meetsThreshold(uplift, minForWaiver.Mul(multiplier)) {
				waived[fee.FeeCode] = simpleLabel(fee, isCAAMember)
			}
		case model.WaiverStrategyTieredMultiplier:
			if tierCodes[fee.FeeCode] {
				label := WaiverLabelFuelUplift
				if tierCodeIsCAA[fee.FeeCode] {
					label = WaiverLabelCAAFuelUplift
				}
				waived[fee.FeeCode] = label
			}
		}
	}

	return waived
}

func simpleLabel(fee ResolvedFee, isCAAMember bool) string {
	if isCAAMember && fee.HasCAAOverride && fee.CAASimpleMultiplierOverride != nil {
		return WaiverLabelCAAFuelUplift
	}
	return WaiverLabelFuelUplift
}
