package dto

import (
	"github.com/google/uuid"

	service "fbofuel_backend/internals/features/billing/receipts/service"
)

////////////////////////////////////////////////////////////////////////////////
// RECEIPTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create draft from a completed fuel order.
type ReceiptCreateDTO struct {
	ReceiptFuelOrderID uuid.UUID `json:"receipt_fuel_order_id" validate:"required"`
}

type AdditionalServiceDTO struct {
	FeeCode  string `json:"fee_code" validate:"required"`
	Quantity int64  `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// Partial update of an editable draft.
type ReceiptUpdateDTO struct {
	ReceiptCustomerID         *uuid.UUID             `json:"receipt_customer_id,omitempty"`
	ReceiptAircraftTypeID     *uuid.UUID             `json:"receipt_aircraft_type_id,omitempty"`
	ReceiptNotes              *string                `json:"receipt_notes,omitempty" validate:"omitempty,max=2000"`
	// nil means "leave stored services untouched".
	ReceiptAdditionalServices []AdditionalServiceDTO `json:"receipt_additional_services,omitempty" validate:"omitempty,dive"`
}

type ReceiptCalculateDTO struct {
	AdditionalServices []AdditionalServiceDTO `json:"additional_services,omitempty" validate:"omitempty,dive"`
}

type ReceiptVoidDTO struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func ToServiceAdditionalServices(in []AdditionalServiceDTO) []service.AdditionalServiceInput {
	if in == nil {
		return nil
	}
	out := make([]service.AdditionalServiceInput, 0, len(in))
	for _, s := range in {
		out = append(out, service.AdditionalServiceInput{
			FeeCode:  s.FeeCode,
			Quantity: s.Quantity,
		})
	}
	return out
}

func (d ReceiptUpdateDTO) ToDraftUpdate() service.DraftUpdate {
	return service.DraftUpdate{
		CustomerID:         d.ReceiptCustomerID,
		AircraftTypeID:     d.ReceiptAircraftTypeID,
		Notes:              d.ReceiptNotes,
		AdditionalServices: ToServiceAdditionalServices(d.ReceiptAdditionalServices),
	}
}
