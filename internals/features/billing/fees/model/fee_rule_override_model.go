package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL fee_rule_overrides --------------------------------------------
// Links a fee rule to exactly one of {classification, aircraft type}.
// A row with a nil override_amount still applies: it can carry a CAA-amount
// override while the non-CAA amount falls through to the next tier.
// The XOR of the two target columns is enforced by a CHECK in the SQL
// migration (num_nonnulls(classification_id, aircraft_type_id) = 1).
type FeeRuleOverride struct {
	FeeRuleOverrideID uuid.UUID `json:"fee_rule_override_id" gorm:"column:fee_rule_override_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeeRuleOverrideFeeRuleID uuid.UUID `json:"fee_rule_override_fee_rule_id" gorm:"column:fee_rule_override_fee_rule_id;type:uuid;not null;uniqueIndex:uq_fee_rule_overrides_class,priority:1;uniqueIndex:uq_fee_rule_overrides_type,priority:1"`

	// Target: exactly one of the two
	FeeRuleOverrideClassificationID *uuid.UUID `json:"fee_rule_override_classification_id,omitempty" gorm:"column:fee_rule_override_classification_id;type:uuid;uniqueIndex:uq_fee_rule_overrides_class,priority:2"`
	FeeRuleOverrideAircraftTypeID   *uuid.UUID `json:"fee_rule_override_aircraft_type_id,omitempty" gorm:"column:fee_rule_override_aircraft_type_id;type:uuid;uniqueIndex:uq_fee_rule_overrides_type,priority:2"`

	FeeRuleOverrideAmount    *decimal.Decimal `json:"fee_rule_override_amount,omitempty" gorm:"column:fee_rule_override_amount;type:numeric(12,2)"`
	FeeRuleOverrideCAAAmount *decimal.Decimal `json:"fee_rule_override_caa_amount,omitempty" gorm:"column:fee_rule_override_caa_amount;type:numeric(12,2)"`

	FeeRuleOverrideCreatedAt time.Time      `json:"fee_rule_override_created_at" gorm:"column:fee_rule_override_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeRuleOverrideUpdatedAt time.Time      `json:"fee_rule_override_updated_at" gorm:"column:fee_rule_override_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeRuleOverrideDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fee_rule_override_deleted_at;type:timestamptz;index"`
}

func (FeeRuleOverride) TableName() string { return "fee_rule_overrides" }

// TargetsAircraftType reports whether this row overrides at the aircraft tier.
func (m *FeeRuleOverride) TargetsAircraftType() bool {
	return m.FeeRuleOverrideAircraftTypeID != nil
}
