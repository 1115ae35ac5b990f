package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fbofuel_backend/internals/constants"
	model "fbofuel_backend/internals/features/fuel/model"
)

// NormalizeFuelType canonicalizes the fuel-type strings that show up on
// orders and price rows ("jet_a", "JET-A", "jet a" → "JET_A").
func NormalizeFuelType(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	switch s {
	case "JETA", "JET_A1", "JET_A_1", "JETA1":
		return "JET_A"
	}
	return s
}

// CurrentFuelPrice returns the latest effective price for (fbo, fuel type),
// falling back to the hardcoded default when no price row exists.
func CurrentFuelPrice(ctx context.Context, db *gorm.DB, fboLocationID uuid.UUID, fuelType string) decimal.Decimal {
	var row model.FuelPrice
	err := db.WithContext(ctx).
		Where("fuel_price_fbo_location_id = ? AND fuel_price_fuel_type = ? AND fuel_price_effective_at <= ?",
			fboLocationID, NormalizeFuelType(fuelType), time.Now().UTC()).
		Order("fuel_price_effective_at DESC").
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] fuel price lookup failed, using default: %v", err)
		}
		return constants.DefaultFuelPricePerGallon
	}
	return row.FuelPricePricePerGallon
}
