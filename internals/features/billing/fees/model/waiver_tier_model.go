package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL waiver_tiers ------------------------------------------------------
// Tiers are inclusive: every tier whose threshold the uplift meets contributes
// its fee codes to the waived set (union, not pick-highest).
type WaiverTier struct {
	WaiverTierID uuid.UUID `json:"waiver_tier_id" gorm:"column:waiver_tier_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	WaiverTierFBOLocationID uuid.UUID `json:"waiver_tier_fbo_location_id" gorm:"column:waiver_tier_fbo_location_id;type:uuid;not null;index"`

	WaiverTierName                string          `json:"waiver_tier_name" gorm:"column:waiver_tier_name;type:varchar(100);not null"`
	WaiverTierFuelUpliftMultiplier decimal.Decimal `json:"waiver_tier_fuel_uplift_multiplier" gorm:"column:waiver_tier_fuel_uplift_multiplier;type:numeric(8,4);not null"`

	// Fee codes this tier waives; order is irrelevant.
	WaiverTierFeesWaivedCodes pq.StringArray `json:"waiver_tier_fees_waived_codes" gorm:"column:waiver_tier_fees_waived_codes;type:text[];not null"`

	WaiverTierTierPriority      int  `json:"waiver_tier_tier_priority" gorm:"column:waiver_tier_tier_priority;type:int;not null;default:0"`
	WaiverTierIsCAASpecificTier bool `json:"waiver_tier_is_caa_specific_tier" gorm:"column:waiver_tier_is_caa_specific_tier;type:boolean;not null;default:false"`

	WaiverTierCreatedAt time.Time      `json:"waiver_tier_created_at" gorm:"column:waiver_tier_created_at;type:timestamptz;not null;autoCreateTime"`
	WaiverTierUpdatedAt time.Time      `json:"waiver_tier_updated_at" gorm:"column:waiver_tier_updated_at;type:timestamptz;not null;autoUpdateTime"`
	WaiverTierDeletedAt gorm.DeletedAt `json:"-" gorm:"column:waiver_tier_deleted_at;type:timestamptz;index"`
}

func (WaiverTier) TableName() string { return "waiver_tiers" }

// WaivesCode reports whether code appears in this tier's fee-code list.
func (m *WaiverTier) WaivesCode(code string) bool {
	for _, c := range m.WaiverTierFeesWaivedCodes {
		if c == code {
			return true
		}
	}
	return false
}
