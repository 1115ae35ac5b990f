package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/billing/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE RULE OVERRIDES — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeRuleOverrideCreateDTO struct {
	FeeRuleOverrideFeeRuleID uuid.UUID `json:"fee_rule_override_fee_rule_id" validate:"required"`

	// Exactly one target must be set.
	FeeRuleOverrideClassificationID *uuid.UUID `json:"fee_rule_override_classification_id,omitempty"`
	FeeRuleOverrideAircraftTypeID   *uuid.UUID `json:"fee_rule_override_aircraft_type_id,omitempty"`

	FeeRuleOverrideAmount    *decimal.Decimal `json:"fee_rule_override_amount,omitempty"`
	FeeRuleOverrideCAAAmount *decimal.Decimal `json:"fee_rule_override_caa_amount,omitempty"`
}

type FeeRuleOverrideUpdateDTO struct {
	FeeRuleOverrideAmount    *decimal.Decimal `json:"fee_rule_override_amount,omitempty"`
	FeeRuleOverrideCAAAmount *decimal.Decimal `json:"fee_rule_override_caa_amount,omitempty"`

	// When true, the corresponding amount is cleared instead of left untouched.
	ClearAmount    bool `json:"clear_amount,omitempty"`
	ClearCAAAmount bool `json:"clear_caa_amount,omitempty"`
}

// HasExactlyOneTarget reports whether the create payload names a single target.
func (d FeeRuleOverrideCreateDTO) HasExactlyOneTarget() bool {
	return (d.FeeRuleOverrideClassificationID != nil) != (d.FeeRuleOverrideAircraftTypeID != nil)
}

func FeeRuleOverrideCreateDTOToModel(in FeeRuleOverrideCreateDTO) model.FeeRuleOverride {
	return model.FeeRuleOverride{
		FeeRuleOverrideFeeRuleID:        in.FeeRuleOverrideFeeRuleID,
		FeeRuleOverrideClassificationID: in.FeeRuleOverrideClassificationID,
		FeeRuleOverrideAircraftTypeID:   in.FeeRuleOverrideAircraftTypeID,
		FeeRuleOverrideAmount:           in.FeeRuleOverrideAmount,
		FeeRuleOverrideCAAAmount:        in.FeeRuleOverrideCAAAmount,
	}
}

func ApplyFeeRuleOverrideUpdate(m *model.FeeRuleOverride, in FeeRuleOverrideUpdateDTO) {
	if in.ClearAmount {
		m.FeeRuleOverrideAmount = nil
	} else if in.FeeRuleOverrideAmount != nil {
		m.FeeRuleOverrideAmount = in.FeeRuleOverrideAmount
	}
	if in.ClearCAAAmount {
		m.FeeRuleOverrideCAAAmount = nil
	} else if in.FeeRuleOverrideCAAAmount != nil {
		m.FeeRuleOverrideCAAAmount = in.FeeRuleOverrideCAAAmount
	}
}

////////////////////////////////////////////////////////////////////////////////
// WAIVER TIERS — DTO
////////////////////////////////////////////////////////////////////////////////

// Tiers belong to the FBO; the location id comes from the route path.
type WaiverTierCreateDTO struct {
	WaiverTierName                 string          `json:"waiver_tier_name" validate:"required,max=100"`
	WaiverTierFuelUpliftMultiplier decimal.Decimal `json:"waiver_tier_fuel_uplift_multiplier" validate:"required"`
	WaiverTierFeesWaivedCodes      []string        `json:"waiver_tier_fees_waived_codes" validate:"required,min=1"`
	WaiverTierTierPriority         int             `json:"waiver_tier_tier_priority"`
	WaiverTierIsCAASpecificTier    bool            `json:"waiver_tier_is_caa_specific_tier"`
}

type WaiverTierUpdateDTO struct {
	WaiverTierName                 *string          `json:"waiver_tier_name,omitempty" validate:"omitempty,max=100"`
	WaiverTierFuelUpliftMultiplier *decimal.Decimal `json:"waiver_tier_fuel_uplift_multiplier,omitempty"`
	WaiverTierFeesWaivedCodes      []string         `json:"waiver_tier_fees_waived_codes,omitempty"`
	WaiverTierTierPriority         *int             `json:"waiver_tier_tier_priority,omitempty"`
	WaiverTierIsCAASpecificTier    *bool            `json:"waiver_tier_is_caa_specific_tier,omitempty"`
}

// normalizeFeeCodes trims and uppercases so tier lists match stored fee codes.
func normalizeFeeCodes(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	for _, c := range in {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func WaiverTierCreateDTOToModel(in WaiverTierCreateDTO, fboLocationID uuid.UUID) model.WaiverTier {
	return model.WaiverTier{
		WaiverTierFBOLocationID:        fboLocationID,
		WaiverTierName:                 strings.TrimSpace(in.WaiverTierName),
		WaiverTierFuelUpliftMultiplier: in.WaiverTierFuelUpliftMultiplier,
		WaiverTierFeesWaivedCodes:      normalizeFeeCodes(in.WaiverTierFeesWaivedCodes),
		WaiverTierTierPriority:         in.WaiverTierTierPriority,
		WaiverTierIsCAASpecificTier:    in.WaiverTierIsCAASpecificTier,
	}
}

func ApplyWaiverTierUpdate(m *model.WaiverTier, in WaiverTierUpdateDTO) {
	if in.WaiverTierName != nil {
		m.WaiverTierName = strings.TrimSpace(*in.WaiverTierName)
	}
	if in.WaiverTierFuelUpliftMultiplier != nil {
		m.WaiverTierFuelUpliftMultiplier = *in.WaiverTierFuelUpliftMultiplier
	}
	if in.WaiverTierFeesWaivedCodes != nil {
		m.WaiverTierFeesWaivedCodes = normalizeFeeCodes(in.WaiverTierFeesWaivedCodes)
	}
	if in.WaiverTierTierPriority != nil {
		m.WaiverTierTierPriority = *in.WaiverTierTierPriority
	}
	if in.WaiverTierIsCAASpecificTier != nil {
		m.WaiverTierIsCAASpecificTier = *in.WaiverTierIsCAASpecificTier
	}
}
