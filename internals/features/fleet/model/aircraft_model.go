package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL aircraft ----------------------------------------------------------
type Aircraft struct {
	AircraftID uuid.UUID `json:"aircraft_id" gorm:"column:aircraft_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AircraftTailNumber     string     `json:"aircraft_tail_number" gorm:"column:aircraft_tail_number;type:varchar(20);not null;uniqueIndex:uq_aircraft_tail_number"`
	AircraftAircraftTypeID uuid.UUID  `json:"aircraft_aircraft_type_id" gorm:"column:aircraft_aircraft_type_id;type:uuid;not null;index"`
	AircraftFuelType       string     `json:"aircraft_fuel_type" gorm:"column:aircraft_fuel_type;type:varchar(30);not null"`
	AircraftCustomerID     *uuid.UUID `json:"aircraft_customer_id,omitempty" gorm:"column:aircraft_customer_id;type:uuid;index"`

	AircraftCreatedAt time.Time      `json:"aircraft_created_at" gorm:"column:aircraft_created_at;type:timestamptz;not null;autoCreateTime"`
	AircraftUpdatedAt time.Time      `json:"aircraft_updated_at" gorm:"column:aircraft_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AircraftDeletedAt gorm.DeletedAt `json:"-" gorm:"column:aircraft_deleted_at;type:timestamptz;index"`
}

func (Aircraft) TableName() string { return "aircraft" }

func (m *Aircraft) BeforeCreate(tx *gorm.DB) (err error) {
	m.AircraftTailNumber = strings.ToUpper(strings.TrimSpace(m.AircraftTailNumber))
	return nil
}
