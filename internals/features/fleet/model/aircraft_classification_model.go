package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL aircraft_classifications ---------------------------------------
// Fee category: flat grouping key for fee rules. The optional parent link is
// kept for grouping/reporting only and never participates in rule resolution.
type AircraftClassification struct {
	AircraftClassificationID uuid.UUID `json:"aircraft_classification_id" gorm:"column:aircraft_classification_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	AircraftClassificationFBOLocationID uuid.UUID `json:"aircraft_classification_fbo_location_id" gorm:"column:aircraft_classification_fbo_location_id;type:uuid;not null;uniqueIndex:uq_classifications_name,priority:1"`

	AircraftClassificationName     string     `json:"aircraft_classification_name" gorm:"column:aircraft_classification_name;type:varchar(100);not null;uniqueIndex:uq_classifications_name,priority:2"`
	AircraftClassificationParentID *uuid.UUID `json:"aircraft_classification_parent_id,omitempty" gorm:"column:aircraft_classification_parent_id;type:uuid"`

	AircraftClassificationCreatedAt time.Time      `json:"aircraft_classification_created_at" gorm:"column:aircraft_classification_created_at;type:timestamptz;not null;autoCreateTime"`
	AircraftClassificationUpdatedAt time.Time      `json:"aircraft_classification_updated_at" gorm:"column:aircraft_classification_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AircraftClassificationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:aircraft_classification_deleted_at;type:timestamptz;index"`
}

func (AircraftClassification) TableName() string { return "aircraft_classifications" }
