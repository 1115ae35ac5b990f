package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func baseRule(code string, amount string) model.FeeRule {
	return model.FeeRule{
		FeeRuleID:                     uuid.New(),
		FeeRuleFBOLocationID:          uuid.New(),
		FeeRuleFeeCode:                code,
		FeeRuleFeeName:                code + " Fee",
		FeeRuleAmount:                 dec(amount),
		FeeRuleWaiverStrategy:         model.WaiverStrategyNone,
		FeeRuleSimpleWaiverMultiplier: dec("1"),
	}
}

// TestResolveFeeRuleGlobalOnly checks that with no override rows the rule's
// own values come back unchanged.
func TestResolveFeeRuleGlobalOnly(t *testing.T) {
	rule := baseRule("RAMP", "75.00")
	resolved := ResolveFeeRule(rule, nil, uuid.New(), nil)

	require.Equal(t, "RAMP", resolved.FeeCode)
	require.True(t, resolved.Amount.Equal(dec("75.00")))
	require.Nil(t, resolved.CAAAmount)
	require.True(t, resolved.EffectiveAmount(false).Equal(dec("75.00")))
	require.True(t, resolved.EffectiveAmount(true).Equal(dec("75.00")))
}

// TestResolveFeeRulePriority checks the aircraft tier beats the
// classification tier, which beats the global rule.
func TestResolveFeeRulePriority(t *testing.T) {
	rule := baseRule("RAMP", "75.00")
	aircraftTypeID := uuid.New()
	classificationID := uuid.New()

	overrides := []model.FeeRuleOverride{
		{
			FeeRuleOverrideFeeRuleID:        rule.FeeRuleID,
			FeeRuleOverrideClassificationID: &classificationID,
			FeeRuleOverrideAmount:           decPtr("60.00"),
		},
		{
			FeeRuleOverrideFeeRuleID:      rule.FeeRuleID,
			FeeRuleOverrideAircraftTypeID: &aircraftTypeID,
			FeeRuleOverrideAmount:         decPtr("90.00"),
		},
	}

	resolved := ResolveFeeRule(rule, overrides, aircraftTypeID, &classificationID)
	require.True(t, resolved.Amount.Equal(dec("90.00")), "aircraft override must win")

	// Without the aircraft row the classification row applies.
	resolved = ResolveFeeRule(rule, overrides[:1], aircraftTypeID, &classificationID)
	require.True(t, resolved.Amount.Equal(dec("60.00")))

	// Without any applicable row the global amount holds.
	resolved = ResolveFeeRule(rule, overrides[:1], aircraftTypeID, nil)
	require.True(t, resolved.Amount.Equal(dec("75.00")))
}

// TestResolveFeeRulePerFieldFallThrough checks that resolution is per
// sub-field: an aircraft row overriding only the CAA amount leaves the base
// amount to fall through to the classification row.
func TestResolveFeeRulePerFieldFallThrough(t *testing.T) {
	rule := baseRule("HANGAR", "100.00")
	rule.FeeRuleHasCAAOverride = true
	aircraftTypeID := uuid.New()
	classificationID := uuid.New()

	overrides := []model.FeeRuleOverride{
		{
			FeeRuleOverrideFeeRuleID:        rule.FeeRuleID,
			FeeRuleOverrideClassificationID: &classificationID,
			FeeRuleOverrideAmount:           decPtr("80.00"),
		},
		{
			FeeRuleOverrideFeeRuleID:      rule.FeeRuleID,
			FeeRuleOverrideAircraftTypeID: &aircraftTypeID,
			FeeRuleOverrideCAAAmount:      decPtr("40.00"),
		},
	}

	resolved := ResolveFeeRule(rule, overrides, aircraftTypeID, &classificationID)
	require.True(t, resolved.Amount.Equal(dec("80.00")), "base amount falls through to classification")
	require.NotNil(t, resolved.CAAAmount)
	require.True(t, resolved.CAAAmount.Equal(dec("40.00")))

	require.True(t, resolved.EffectiveAmount(false).Equal(dec("80.00")))
	require.True(t, resolved.EffectiveAmount(true).Equal(dec("40.00")))
}

// TestResolveFeeRuleIgnoresForeignRows checks that rows for other rules or
// other targets never leak in, so the caller can pass the FBO's full
// override set.
func TestResolveFeeRuleIgnoresForeignRows(t *testing.T) {
	rule := baseRule("RAMP", "75.00")
	aircraftTypeID := uuid.New()
	otherType := uuid.New()
	otherRule := uuid.New()

	overrides := []model.FeeRuleOverride{
		{
			FeeRuleOverrideFeeRuleID:      otherRule,
			FeeRuleOverrideAircraftTypeID: &aircraftTypeID,
			FeeRuleOverrideAmount:         decPtr("10.00"),
		},
		{
			FeeRuleOverrideFeeRuleID:      rule.FeeRuleID,
			FeeRuleOverrideAircraftTypeID: &otherType,
			FeeRuleOverrideAmount:         decPtr("20.00"),
		},
	}

	resolved := ResolveFeeRule(rule, overrides, aircraftTypeID, nil)
	require.True(t, resolved.Amount.Equal(dec("75.00")))
}

// TestEffectiveAmountCAAGating checks that CAA pricing requires both the
// rule-level flag and a resolved CAA amount.
func TestEffectiveAmountCAAGating(t *testing.T) {
	resolved := ResolvedFee{Amount: dec("75.00"), CAAAmount: decPtr("50.00")}

	// Flag off: CAA amount ignored even for members.
	require.True(t, resolved.EffectiveAmount(true).Equal(dec("75.00")))

	resolved.HasCAAOverride = true
	require.True(t, resolved.EffectiveAmount(true).Equal(dec("50.00")))
	require.True(t, resolved.EffectiveAmount(false).Equal(dec("75.00")))

	// Flag on but no CAA amount resolved anywhere: standard amount.
	resolved.CAAAmount = nil
	require.True(t, resolved.EffectiveAmount(true).Equal(dec("75.00")))
}

func TestEffectiveWaiverOverridesForMembers(t *testing.T) {
	tiered := model.WaiverStrategyTieredMultiplier
	resolved := ResolvedFee{
		HasCAAOverride:              true,
		WaiverStrategy:              model.WaiverStrategySimpleMultiplier,
		SimpleWaiverMultiplier:      dec("2"),
		CAAWaiverStrategyOverride:   &tiered,
		CAASimpleMultiplierOverride: decPtr("0.5"),
	}

	require.Equal(t, model.WaiverStrategySimpleMultiplier, resolved.EffectiveWaiverStrategy(false))
	require.Equal(t, model.WaiverStrategyTieredMultiplier, resolved.EffectiveWaiverStrategy(true))
	require.True(t, resolved.EffectiveSimpleMultiplier(false).Equal(dec("2")))
	require.True(t, resolved.EffectiveSimpleMultiplier(true).Equal(dec("0.5")))
}
