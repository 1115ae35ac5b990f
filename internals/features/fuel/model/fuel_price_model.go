package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL fuel_prices -----------------------------------------------------
// Current price = latest effective row for (fbo, normalized fuel type).
type FuelPrice struct {
	FuelPriceID uuid.UUID `json:"fuel_price_id" gorm:"column:fuel_price_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FuelPriceFBOLocationID uuid.UUID `json:"fuel_price_fbo_location_id" gorm:"column:fuel_price_fbo_location_id;type:uuid;not null;index:idx_fuel_prices_lookup,priority:1"`
	FuelPriceFuelType      string    `json:"fuel_price_fuel_type" gorm:"column:fuel_price_fuel_type;type:varchar(30);not null;index:idx_fuel_prices_lookup,priority:2"`

	FuelPricePricePerGallon decimal.Decimal `json:"fuel_price_price_per_gallon" gorm:"column:fuel_price_price_per_gallon;type:numeric(12,4);not null"`
	FuelPriceEffectiveAt    time.Time       `json:"fuel_price_effective_at" gorm:"column:fuel_price_effective_at;type:timestamptz;not null;index:idx_fuel_prices_lookup,priority:3"`

	FuelPriceCreatedAt time.Time      `json:"fuel_price_created_at" gorm:"column:fuel_price_created_at;type:timestamptz;not null;autoCreateTime"`
	FuelPriceUpdatedAt time.Time      `json:"fuel_price_updated_at" gorm:"column:fuel_price_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FuelPriceDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fuel_price_deleted_at;type:timestamptz;index"`
}

func (FuelPrice) TableName() string { return "fuel_prices" }
