package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL fee_rules ---------------------------------------------------------
// Global tier of the pricing hierarchy. Aircraft- and classification-level
// overrides live in fee_rule_overrides.
//
// Invariant: when FeeRuleHasCAAOverride is false every CAA field below is
// ignored at calculation time regardless of stored value.
type FeeRule struct {
	// PK
	FeeRuleID uuid.UUID `json:"fee_rule_id" gorm:"column:fee_rule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	FeeRuleFBOLocationID uuid.UUID `json:"fee_rule_fbo_location_id" gorm:"column:fee_rule_fbo_location_id;type:uuid;not null;uniqueIndex:uq_fee_rules_code,priority:1"`

	// Identity
	FeeRuleFeeCode string `json:"fee_rule_fee_code" gorm:"column:fee_rule_fee_code;type:varchar(40);not null;uniqueIndex:uq_fee_rules_code,priority:2"`
	FeeRuleFeeName string `json:"fee_rule_fee_name" gorm:"column:fee_rule_fee_name;type:varchar(120);not null"`

	// Base price
	FeeRuleAmount   decimal.Decimal `json:"fee_rule_amount" gorm:"column:fee_rule_amount;type:numeric(12,2);not null"`
	FeeRuleCurrency string          `json:"fee_rule_currency" gorm:"column:fee_rule_currency;type:varchar(3);not null;default:'USD'"`

	// Behavior flags
	FeeRuleIsTaxable                          bool             `json:"fee_rule_is_taxable" gorm:"column:fee_rule_is_taxable;type:boolean;not null;default:true"`
	FeeRuleIsPotentiallyWaivableByFuelUplift  bool             `json:"fee_rule_is_potentially_waivable_by_fuel_uplift" gorm:"column:fee_rule_is_potentially_waivable_by_fuel_uplift;type:boolean;not null;default:false"`
	FeeRuleIsManuallyWaivable                 bool             `json:"fee_rule_is_manually_waivable" gorm:"column:fee_rule_is_manually_waivable;type:boolean;not null;default:false"`
	FeeRuleCalculationBasis                   CalculationBasis `json:"fee_rule_calculation_basis" gorm:"column:fee_rule_calculation_basis;type:varchar(20);not null;default:'FIXED_PRICE'"`
	FeeRuleWaiverStrategy                     WaiverStrategy   `json:"fee_rule_waiver_strategy" gorm:"column:fee_rule_waiver_strategy;type:varchar(20);not null;default:'NONE'"`
	FeeRuleSimpleWaiverMultiplier             decimal.Decimal  `json:"fee_rule_simple_waiver_multiplier" gorm:"column:fee_rule_simple_waiver_multiplier;type:numeric(8,4);not null;default:1"`

	// CAA overrides (gated by has_caa_override)
	FeeRuleHasCAAOverride                      bool             `json:"fee_rule_has_caa_override" gorm:"column:fee_rule_has_caa_override;type:boolean;not null;default:false"`
	FeeRuleCAAOverrideAmount                   *decimal.Decimal `json:"fee_rule_caa_override_amount,omitempty" gorm:"column:fee_rule_caa_override_amount;type:numeric(12,2)"`
	FeeRuleCAAWaiverStrategyOverride           *WaiverStrategy  `json:"fee_rule_caa_waiver_strategy_override,omitempty" gorm:"column:fee_rule_caa_waiver_strategy_override;type:varchar(20)"`
	FeeRuleCAASimpleWaiverMultiplierOverride   *decimal.Decimal `json:"fee_rule_caa_simple_waiver_multiplier_override,omitempty" gorm:"column:fee_rule_caa_simple_waiver_multiplier_override;type:numeric(8,4)"`

	// Category default: rule applies to every aircraft in this classification
	FeeRuleAppliesToClassificationID *uuid.UUID `json:"fee_rule_applies_to_classification_id,omitempty" gorm:"column:fee_rule_applies_to_classification_id;type:uuid;index"`

	// Relations
	FeeRuleOverrides []FeeRuleOverride `json:"fee_rule_overrides,omitempty" gorm:"foreignKey:FeeRuleOverrideFeeRuleID;references:FeeRuleID"`

	// Timestamps
	FeeRuleCreatedAt time.Time      `json:"fee_rule_created_at" gorm:"column:fee_rule_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeRuleUpdatedAt time.Time      `json:"fee_rule_updated_at" gorm:"column:fee_rule_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeRuleDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fee_rule_deleted_at;type:timestamptz;index"`
}

func (FeeRule) TableName() string { return "fee_rules" }

func (m *FeeRule) BeforeCreate(tx *gorm.DB) (err error) {
	m.FeeRuleFeeCode = strings.ToUpper(strings.TrimSpace(m.FeeRuleFeeCode))
	if strings.TrimSpace(m.FeeRuleCurrency) == "" {
		m.FeeRuleCurrency = "USD"
	}
	if strings.TrimSpace(string(m.FeeRuleWaiverStrategy)) == "" {
		m.FeeRuleWaiverStrategy = WaiverStrategyNone
	}
	if strings.TrimSpace(string(m.FeeRuleCalculationBasis)) == "" {
		m.FeeRuleCalculationBasis = CalculationBasisFixedPrice
	}
	return nil
}
