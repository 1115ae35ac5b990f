package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- MODEL fee_schedule_versions ---------------------------------------------
// Immutable restore point: a full JSON snapshot of the FBO's fee
// configuration (classifications, aircraft types, fee rules, overrides,
// waiver tiers, aircraft type configs). Never updated, never soft-deleted.
type FeeScheduleVersion struct {
	FeeScheduleVersionID uuid.UUID `json:"fee_schedule_version_id" gorm:"column:fee_schedule_version_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeeScheduleVersionFBOLocationID uuid.UUID `json:"fee_schedule_version_fbo_location_id" gorm:"column:fee_schedule_version_fbo_location_id;type:uuid;not null;index"`

	FeeScheduleVersionName        string  `json:"fee_schedule_version_name" gorm:"column:fee_schedule_version_name;type:varchar(120);not null"`
	FeeScheduleVersionDescription *string `json:"fee_schedule_version_description,omitempty" gorm:"column:fee_schedule_version_description;type:text"`

	FeeScheduleVersionConfigurationData datatypes.JSON `json:"fee_schedule_version_configuration_data" gorm:"column:fee_schedule_version_configuration_data;type:jsonb;not null"`

	FeeScheduleVersionCreatedByUserID uuid.UUID `json:"fee_schedule_version_created_by_user_id" gorm:"column:fee_schedule_version_created_by_user_id;type:uuid;not null"`
	FeeScheduleVersionCreatedAt       time.Time `json:"fee_schedule_version_created_at" gorm:"column:fee_schedule_version_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (FeeScheduleVersion) TableName() string { return "fee_schedule_versions" }
