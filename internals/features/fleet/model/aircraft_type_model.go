package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL aircraft_types --------------------------------------------------
// Receipt snapshots copy the type name at receipt time, so editing a type
// never rewrites historical receipts.
type AircraftType struct {
	AircraftTypeID uuid.UUID `json:"aircraft_type_id" gorm:"column:aircraft_type_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	AircraftTypeFBOLocationID uuid.UUID `json:"aircraft_type_fbo_location_id" gorm:"column:aircraft_type_fbo_location_id;type:uuid;not null;uniqueIndex:uq_aircraft_types_name,priority:1"`

	AircraftTypeName string `json:"aircraft_type_name" gorm:"column:aircraft_type_name;type:varchar(120);not null;uniqueIndex:uq_aircraft_types_name,priority:2"`

	// Global waiver threshold; 0 disables fuel-based waivers for this type.
	AircraftTypeBaseMinFuelGallonsForWaiver decimal.Decimal `json:"aircraft_type_base_min_fuel_gallons_for_waiver" gorm:"column:aircraft_type_base_min_fuel_gallons_for_waiver;type:numeric(12,2);not null;default:0"`

	AircraftTypeDefaultClassificationID *uuid.UUID       `json:"aircraft_type_default_classification_id,omitempty" gorm:"column:aircraft_type_default_classification_id;type:uuid;index"`
	AircraftTypeDefaultMaxGrossWeight   *decimal.Decimal `json:"aircraft_type_default_max_gross_weight,omitempty" gorm:"column:aircraft_type_default_max_gross_weight;type:numeric(12,2)"`

	AircraftTypeCreatedAt time.Time      `json:"aircraft_type_created_at" gorm:"column:aircraft_type_created_at;type:timestamptz;not null;autoCreateTime"`
	AircraftTypeUpdatedAt time.Time      `json:"aircraft_type_updated_at" gorm:"column:aircraft_type_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AircraftTypeDeletedAt gorm.DeletedAt `json:"-" gorm:"column:aircraft_type_deleted_at;type:timestamptz;index"`
}

func (AircraftType) TableName() string { return "aircraft_types" }
