package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/fuel/model"
)

////////////////////////////////////////////////////////////////////////////////
// FUEL ORDERS — DTO
////////////////////////////////////////////////////////////////////////////////

type FuelOrderCreateDTO struct {
	FuelOrderTailNumber string     `json:"fuel_order_tail_number" validate:"required,max=20"`
	FuelOrderAircraftID *uuid.UUID `json:"fuel_order_aircraft_id,omitempty"`
	FuelOrderCustomerID *uuid.UUID `json:"fuel_order_customer_id,omitempty"`

	FuelOrderFuelType         string          `json:"fuel_order_fuel_type" validate:"required,max=30"`
	FuelOrderRequestedGallons decimal.Decimal `json:"fuel_order_requested_gallons" validate:"required"`

	FuelOrderAssignedLSTUserID *uuid.UUID `json:"fuel_order_assigned_lst_user_id,omitempty"`
	FuelOrderAssignedTruckID   *uuid.UUID `json:"fuel_order_assigned_truck_id,omitempty"`
}

// Status transition payload. ChangeVersion must echo the version the client
// last read; a stale value is rejected with 409.
type FuelOrderStatusDTO struct {
	FuelOrderStatus        model.FuelOrderStatus `json:"fuel_order_status" validate:"required"`
	FuelOrderChangeVersion int                   `json:"fuel_order_change_version"`

	// Completion details, required when moving to completed.
	FuelOrderGallonsDispensed  *decimal.Decimal `json:"fuel_order_gallons_dispensed,omitempty"`
	FuelOrderStartMeterReading *decimal.Decimal `json:"fuel_order_start_meter_reading,omitempty"`
	FuelOrderEndMeterReading   *decimal.Decimal `json:"fuel_order_end_meter_reading,omitempty"`
}

// FuelOrderCompleteDTO is the one-call completion payload.
type FuelOrderCompleteDTO struct {
	FuelOrderChangeVersion     int              `json:"fuel_order_change_version"`
	FuelOrderGallonsDispensed  decimal.Decimal  `json:"fuel_order_gallons_dispensed" validate:"required"`
	FuelOrderStartMeterReading *decimal.Decimal `json:"fuel_order_start_meter_reading,omitempty"`
	FuelOrderEndMeterReading   *decimal.Decimal `json:"fuel_order_end_meter_reading,omitempty"`
}

type FuelOrderUpdateDTO struct {
	FuelOrderCustomerID        *uuid.UUID       `json:"fuel_order_customer_id,omitempty"`
	FuelOrderFuelType          *string          `json:"fuel_order_fuel_type,omitempty" validate:"omitempty,max=30"`
	FuelOrderRequestedGallons  *decimal.Decimal `json:"fuel_order_requested_gallons,omitempty"`
	FuelOrderAssignedLSTUserID *uuid.UUID       `json:"fuel_order_assigned_lst_user_id,omitempty"`
	FuelOrderAssignedTruckID   *uuid.UUID       `json:"fuel_order_assigned_truck_id,omitempty"`
}

func FuelOrderCreateDTOToModel(in FuelOrderCreateDTO, fboID uuid.UUID) model.FuelOrder {
	return model.FuelOrder{
		FuelOrderFBOLocationID:     fboID,
		FuelOrderTailNumber:        strings.ToUpper(strings.TrimSpace(in.FuelOrderTailNumber)),
		FuelOrderAircraftID:        in.FuelOrderAircraftID,
		FuelOrderCustomerID:        in.FuelOrderCustomerID,
		FuelOrderFuelType:          strings.TrimSpace(in.FuelOrderFuelType),
		FuelOrderRequestedGallons:  in.FuelOrderRequestedGallons,
		FuelOrderAssignedLSTUserID: in.FuelOrderAssignedLSTUserID,
		FuelOrderAssignedTruckID:   in.FuelOrderAssignedTruckID,
	}
}

func ApplyFuelOrderUpdate(m *model.FuelOrder, in FuelOrderUpdateDTO) {
	if in.FuelOrderCustomerID != nil {
		m.FuelOrderCustomerID = in.FuelOrderCustomerID
	}
	if in.FuelOrderFuelType != nil {
		m.FuelOrderFuelType = strings.TrimSpace(*in.FuelOrderFuelType)
	}
	if in.FuelOrderRequestedGallons != nil {
		m.FuelOrderRequestedGallons = *in.FuelOrderRequestedGallons
	}
	if in.FuelOrderAssignedLSTUserID != nil {
		m.FuelOrderAssignedLSTUserID = in.FuelOrderAssignedLSTUserID
	}
	if in.FuelOrderAssignedTruckID != nil {
		m.FuelOrderAssignedTruckID = in.FuelOrderAssignedTruckID
	}
}

////////////////////////////////////////////////////////////////////////////////
// FUEL PRICES — DTO
////////////////////////////////////////////////////////////////////////////////

type FuelPriceCreateDTO struct {
	FuelPriceFuelType         string          `json:"fuel_price_fuel_type" validate:"required,max=30"`
	FuelPricePricePerGallon   decimal.Decimal `json:"fuel_price_price_per_gallon" validate:"required"`
	FuelPriceEffectiveAt      *time.Time      `json:"fuel_price_effective_at,omitempty"`
}

func FuelPriceCreateDTOToModel(in FuelPriceCreateDTO, fboID uuid.UUID) model.FuelPrice {
	effectiveAt := time.Now().UTC()
	if in.FuelPriceEffectiveAt != nil {
		effectiveAt = in.FuelPriceEffectiveAt.UTC()
	}
	return model.FuelPrice{
		FuelPriceFBOLocationID:  fboID,
		FuelPriceFuelType:       in.FuelPriceFuelType,
		FuelPricePricePerGallon: in.FuelPricePricePerGallon,
		FuelPriceEffectiveAt:    effectiveAt,
	}
}
