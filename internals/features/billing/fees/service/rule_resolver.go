package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

// ResolvedFee is the effective pricing for one fee code after walking the
// aircraft → classification → global hierarchy. It carries both the standard
// and CAA values; the caller picks per customer with EffectiveAmount.
type ResolvedFee struct {
	FeeCode string
	FeeName string

	Amount    decimal.Decimal
	CAAAmount *decimal.Decimal

	HasCAAOverride bool

	WaiverStrategy              model.WaiverStrategy
	SimpleWaiverMultiplier      decimal.Decimal
	CAAWaiverStrategyOverride   *model.WaiverStrategy
	CAASimpleMultiplierOverride *decimal.Decimal

	IsTaxable             bool
	IsPotentiallyWaivable bool
	IsManuallyWaivable    bool
}

// EffectiveAmount returns the amount to charge this customer. CAA pricing
// only applies when the rule carries has_caa_override and a CAA amount was
// resolved at some tier.
func (r ResolvedFee) EffectiveAmount(isCAAMember bool) decimal.Decimal {
	if isCAAMember && r.HasCAAOverride && r.CAAAmount != nil {
		return *r.CAAAmount
	}
	return r.Amount
}

// EffectiveWaiverStrategy returns the waiver strategy to evaluate for this
// customer, honoring the rule-level CAA strategy override.
func (r ResolvedFee) EffectiveWaiverStrategy(isCAAMember bool) model.WaiverStrategy {
	if isCAAMember && r.HasCAAOverride && r.CAAWaiverStrategyOverride != nil {
		return *r.CAAWaiverStrategyOverride
	}
	return r.WaiverStrategy
}

// EffectiveSimpleMultiplier returns the simple-waiver threshold multiplier
// for this customer.
func (r ResolvedFee) EffectiveSimpleMultiplier(isCAAMember bool) decimal.Decimal {
	if isCAAMember && r.HasCAAOverride && r.CAASimpleMultiplierOverride != nil {
		return *r.CAASimpleMultiplierOverride
	}
	return r.SimpleWaiverMultiplier
}

// ResolveFeeRule resolves one fee rule against the override rows for a given
// aircraft. Resolution is per sub-field: an aircraft-level row with a nil
// override_amount but a non-nil CAA amount replaces only the CAA amount,
// and the base amount falls through to the classification row, then to the
// rule itself. Overrides for other rules/targets are ignored, so the full
// override set for the FBO can be passed in.
func ResolveFeeRule(rule model.FeeRule, overrides []model.FeeRuleOverride, aircraftTypeID uuid.UUID, classificationID *uuid.UUID) ResolvedFee {
	resolved := ResolvedFee{
		FeeCode:                     rule.FeeRuleFeeCode,
		FeeName:                     rule.FeeRuleFeeName,
		Amount:                      rule.FeeRuleAmount,
		CAAAmount:                   rule.FeeRuleCAAOverrideAmount,
		HasCAAOverride:              rule.FeeRuleHasCAAOverride,
		WaiverStrategy:              rule.FeeRuleWaiverStrategy,
		SimpleWaiverMultiplier:      rule.FeeRuleSimpleWaiverMultiplier,
		CAAWaiverStrategyOverride:   rule.FeeRuleCAAWaiverStrategyOverride,
		CAASimpleMultiplierOverride: rule.FeeRuleCAASimpleWaiverMultiplierOverride,
		IsTaxable:                   rule.FeeRuleIsTaxable,
		IsPotentiallyWaivable:       rule.FeeRuleIsPotentiallyWaivableByFuelUplift,
		IsManuallyWaivable:          rule.FeeRuleIsManuallyWaivable,
	}

	var aircraftRow, classRow *model.FeeRuleOverride
	for i := range overrides {
		o := &overrides[i]
		if o.FeeRuleOverrideFeeRuleID != rule.FeeRuleID {
			continue
		}
		if o.FeeRuleOverrideAircraftTypeID != nil && *o.FeeRuleOverrideAircraftTypeID == aircraftTypeID {
			aircraftRow = o
		}
		if o.FeeRuleOverrideClassificationID != nil && classificationID != nil && *o.FeeRuleOverrideClassificationID == *classificationID {
			classRow = o
		}
	}

	// Classification tier first, then the aircraft tier wins field-by-field.
	if classRow != nil {
		if classRow.FeeRuleOverrideAmount != nil {
			resolved.Amount = *classRow.FeeRuleOverrideAmount
		}
		if classRow.FeeRuleOverrideCAAAmount != nil {
			resolved.CAAAmount = classRow.FeeRuleOverrideCAAAmount
		}
	}
	if aircraftRow != nil {
		if aircraftRow.FeeRuleOverrideAmount != nil {
			resolved.Amount = *aircraftRow.FeeRuleOverrideAmount
		}
		if aircraftRow.FeeRuleOverrideCAAAmount != nil {
			resolved.CAAAmount = aircraftRow.FeeRuleOverrideCAAAmount
		}
	}

	return resolved
}
