package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL fbo_aircraft_type_configs ----------------------------------------
// Per-FBO override of an aircraft type's waiver minimum. When a row exists,
// its minimum wins over AircraftTypeBaseMinFuelGallonsForWaiver.
type FBOAircraftTypeConfig struct {
	FBOAircraftTypeConfigID uuid.UUID `json:"fbo_aircraft_type_config_id" gorm:"column:fbo_aircraft_type_config_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FBOAircraftTypeConfigFBOLocationID  uuid.UUID `json:"fbo_aircraft_type_config_fbo_location_id" gorm:"column:fbo_aircraft_type_config_fbo_location_id;type:uuid;not null;uniqueIndex:uq_type_configs_fbo_type,priority:1"`
	FBOAircraftTypeConfigAircraftTypeID uuid.UUID `json:"fbo_aircraft_type_config_aircraft_type_id" gorm:"column:fbo_aircraft_type_config_aircraft_type_id;type:uuid;not null;uniqueIndex:uq_type_configs_fbo_type,priority:2"`

	FBOAircraftTypeConfigMinFuelGallonsForWaiver decimal.Decimal `json:"fbo_aircraft_type_config_min_fuel_gallons_for_waiver" gorm:"column:fbo_aircraft_type_config_min_fuel_gallons_for_waiver;type:numeric(12,2);not null"`

	FBOAircraftTypeConfigCreatedAt time.Time      `json:"fbo_aircraft_type_config_created_at" gorm:"column:fbo_aircraft_type_config_created_at;type:timestamptz;not null;autoCreateTime"`
	FBOAircraftTypeConfigUpdatedAt time.Time      `json:"fbo_aircraft_type_config_updated_at" gorm:"column:fbo_aircraft_type_config_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FBOAircraftTypeConfigDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fbo_aircraft_type_config_deleted_at;type:timestamptz;index"`
}

func (FBOAircraftTypeConfig) TableName() string { return "fbo_aircraft_type_configs" }
