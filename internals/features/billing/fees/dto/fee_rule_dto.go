package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE RULES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type FeeRuleCreateDTO struct {
	FeeRuleFBOLocationID uuid.UUID `json:"fee_rule_fbo_location_id"`

	FeeRuleFeeCode string `json:"fee_rule_fee_code" validate:"required,max=40"`
	FeeRuleFeeName string `json:"fee_rule_fee_name" validate:"required,max=120"`

	FeeRuleAmount   decimal.Decimal `json:"fee_rule_amount" validate:"required"`
	FeeRuleCurrency string          `json:"fee_rule_currency" validate:"omitempty,len=3"`

	FeeRuleIsTaxable                         bool                   `json:"fee_rule_is_taxable"`
	FeeRuleIsPotentiallyWaivableByFuelUplift bool                   `json:"fee_rule_is_potentially_waivable_by_fuel_uplift"`
	FeeRuleIsManuallyWaivable                bool                   `json:"fee_rule_is_manually_waivable"`
	FeeRuleCalculationBasis                  model.CalculationBasis `json:"fee_rule_calculation_basis" validate:"omitempty,oneof=FIXED_PRICE NOT_APPLICABLE"`
	FeeRuleWaiverStrategy                    model.WaiverStrategy   `json:"fee_rule_waiver_strategy" validate:"omitempty,oneof=NONE SIMPLE_MULTIPLIER TIERED_MULTIPLIER"`
	FeeRuleSimpleWaiverMultiplier            decimal.Decimal        `json:"fee_rule_simple_waiver_multiplier"`

	FeeRuleHasCAAOverride                    bool                  `json:"fee_rule_has_caa_override"`
	FeeRuleCAAOverrideAmount                 *decimal.Decimal      `json:"fee_rule_caa_override_amount,omitempty"`
	FeeRuleCAAWaiverStrategyOverride         *model.WaiverStrategy `json:"fee_rule_caa_waiver_strategy_override,omitempty" validate:"omitempty,oneof=NONE SIMPLE_MULTIPLIER TIERED_MULTIPLIER"`
	FeeRuleCAASimpleWaiverMultiplierOverride *decimal.Decimal      `json:"fee_rule_caa_simple_waiver_multiplier_override,omitempty"`

	FeeRuleAppliesToClassificationID *uuid.UUID `json:"fee_rule_applies_to_classification_id,omitempty"`
}

// Update (partial)
type FeeRuleUpdateDTO struct {
	FeeRuleFeeName *string `json:"fee_rule_fee_name,omitempty" validate:"omitempty,max=120"`

	FeeRuleAmount   *decimal.Decimal `json:"fee_rule_amount,omitempty"`
	FeeRuleCurrency *string          `json:"fee_rule_currency,omitempty" validate:"omitempty,len=3"`

	FeeRuleIsTaxable                         *bool                   `json:"fee_rule_is_taxable,omitempty"`
	FeeRuleIsPotentiallyWaivableByFuelUplift *bool                   `json:"fee_rule_is_potentially_waivable_by_fuel_uplift,omitempty"`
	FeeRuleIsManuallyWaivable                *bool                   `json:"fee_rule_is_manually_waivable,omitempty"`
	FeeRuleCalculationBasis                  *model.CalculationBasis `json:"fee_rule_calculation_basis,omitempty" validate:"omitempty,oneof=FIXED_PRICE NOT_APPLICABLE"`
	FeeRuleWaiverStrategy                    *model.WaiverStrategy   `json:"fee_rule_waiver_strategy,omitempty" validate:"omitempty,oneof=NONE SIMPLE_MULTIPLIER TIERED_MULTIPLIER"`
	FeeRuleSimpleWaiverMultiplier            *decimal.Decimal        `json:"fee_rule_simple_waiver_multiplier,omitempty"`

	FeeRuleHasCAAOverride                    *bool                 `json:"fee_rule_has_caa_override,omitempty"`
	FeeRuleCAAOverrideAmount                 *decimal.Decimal      `json:"fee_rule_caa_override_amount,omitempty"`
	FeeRuleCAAWaiverStrategyOverride         *model.WaiverStrategy `json:"fee_rule_caa_waiver_strategy_override,omitempty" validate:"omitempty,oneof=NONE SIMPLE_MULTIPLIER TIERED_MULTIPLIER"`
	FeeRuleCAASimpleWaiverMultiplierOverride *decimal.Decimal      `json:"fee_rule_caa_simple_waiver_multiplier_override,omitempty"`

	FeeRuleAppliesToClassificationID *uuid.UUID `json:"fee_rule_applies_to_classification_id,omitempty"`
}

func FeeRuleCreateDTOToModel(in FeeRuleCreateDTO) model.FeeRule {
	currency := strings.ToUpper(strings.TrimSpace(in.FeeRuleCurrency))
	if currency == "" {
		currency = "USD"
	}
	strategy := in.FeeRuleWaiverStrategy
	if strategy == "" {
		strategy = model.WaiverStrategyNone
	}
	basis := in.FeeRuleCalculationBasis
	if basis == "" {
		basis = model.CalculationBasisFixedPrice
	}
	multiplier := in.FeeRuleSimpleWaiverMultiplier
	if multiplier.Sign() <= 0 {
		multiplier = decimal.NewFromInt(1)
	}
	return model.FeeRule{
		FeeRuleFBOLocationID:                     in.FeeRuleFBOLocationID,
		FeeRuleFeeCode:                           strings.ToUpper(strings.TrimSpace(in.FeeRuleFeeCode)),
		FeeRuleFeeName:                           strings.TrimSpace(in.FeeRuleFeeName),
		FeeRuleAmount:                            in.FeeRuleAmount,
		FeeRuleCurrency:                          currency,
		FeeRuleIsTaxable:                         in.FeeRuleIsTaxable,
		FeeRuleIsPotentiallyWaivableByFuelUplift: in.FeeRuleIsPotentiallyWaivableByFuelUplift,
		FeeRuleIsManuallyWaivable:                in.FeeRuleIsManuallyWaivable,
		FeeRuleCalculationBasis:                  basis,
		FeeRuleWaiverStrategy:                    strategy,
		FeeRuleSimpleWaiverMultiplier:            multiplier,
		FeeRuleHasCAAOverride:                    in.FeeRuleHasCAAOverride,
		FeeRuleCAAOverrideAmount:                 in.FeeRuleCAAOverrideAmount,
		FeeRuleCAAWaiverStrategyOverride:         in.FeeRuleCAAWaiverStrategyOverride,
		FeeRuleCAASimpleWaiverMultiplierOverride: in.FeeRuleCAASimpleWaiverMultiplierOverride,
		FeeRuleAppliesToClassificationID:         in.FeeRuleAppliesToClassificationID,
	}
}

// ApplyFeeRuleUpdate mutates only the fields present in the DTO.
func ApplyFeeRuleUpdate(m *model.FeeRule, in FeeRuleUpdateDTO) {
	if in.FeeRuleFeeName != nil {
		m.FeeRuleFeeName = strings.TrimSpace(*in.FeeRuleFeeName)
	}
	if in.FeeRuleAmount != nil {
		m.FeeRuleAmount = *in.FeeRuleAmount
	}
	if in.FeeRuleCurrency != nil {
		m.FeeRuleCurrency = strings.ToUpper(strings.TrimSpace(*in.FeeRuleCurrency))
	}
	if in.FeeRuleIsTaxable != nil {
		m.FeeRuleIsTaxable = *in.FeeRuleIsTaxable
	}
	if in.FeeRuleIsPotentiallyWaivableByFuelUplift != nil {
		m.FeeRuleIsPotentiallyWaivableByFuelUplift = *in.FeeRuleIsPotentiallyWaivableByFuelUplift
	}
	if in.FeeRuleIsManuallyWaivable != nil {
		m.FeeRuleIsManuallyWaivable = *in.FeeRuleIsManuallyWaivable
	}
	if in.FeeRuleCalculationBasis != nil {
		m.FeeRuleCalculationBasis = *in.FeeRuleCalculationBasis
	}
	if in.FeeRuleWaiverStrategy != nil {
		m.FeeRuleWaiverStrategy = *in.FeeRuleWaiverStrategy
	}
	if in.FeeRuleSimpleWaiverMultiplier != nil {
		m.FeeRuleSimpleWaiverMultiplier = *in.FeeRuleSimpleWaiverMultiplier
	}
	if in.FeeRuleHasCAAOverride != nil {
		m.FeeRuleHasCAAOverride = *in.FeeRuleHasCAAOverride
	}
	if in.FeeRuleCAAOverrideAmount != nil {
		m.FeeRuleCAAOverrideAmount = in.FeeRuleCAAOverrideAmount
	}
	if in.FeeRuleCAAWaiverStrategyOverride != nil {
		m.FeeRuleCAAWaiverStrategyOverride = in.FeeRuleCAAWaiverStrategyOverride
	}
	if in.FeeRuleCAASimpleWaiverMultiplierOverride != nil {
		m.FeeRuleCAASimpleWaiverMultiplierOverride = in.FeeRuleCAASimpleWaiverMultiplierOverride
	}
	if in.FeeRuleAppliesToClassificationID != nil {
		m.FeeRuleAppliesToClassificationID = in.FeeRuleAppliesToClassificationID
	}
}
