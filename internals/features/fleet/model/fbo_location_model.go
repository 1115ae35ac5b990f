package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL fbo_locations -------------------------------------------------
// Scoping anchor: all fee configuration, fuel prices, and receipts hang off
// one FBO location.
type FBOLocation struct {
	FBOLocationID uuid.UUID `json:"fbo_location_id" gorm:"column:fbo_location_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FBOLocationName string `json:"fbo_location_name" gorm:"column:fbo_location_name;type:varchar(120);not null"`
	FBOLocationCode string `json:"fbo_location_code" gorm:"column:fbo_location_code;type:varchar(10);not null;uniqueIndex:uq_fbo_locations_code"`

	FBOLocationCreatedAt time.Time      `json:"fbo_location_created_at" gorm:"column:fbo_location_created_at;type:timestamptz;not null;autoCreateTime"`
	FBOLocationUpdatedAt time.Time      `json:"fbo_location_updated_at" gorm:"column:fbo_location_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FBOLocationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fbo_location_deleted_at;type:timestamptz;index"`
}

func (FBOLocation) TableName() string { return "fbo_locations" }
