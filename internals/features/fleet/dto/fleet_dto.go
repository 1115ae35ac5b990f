package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "fbofuel_backend/internals/features/fleet/model"
)

////////////////////////////////////////////////////////////////////////////////
// FLEET — DTO
////////////////////////////////////////////////////////////////////////////////

// --- Aircraft classifications ---

type AircraftClassificationCreateDTO struct {
	AircraftClassificationName     string     `json:"aircraft_classification_name" validate:"required,max=120"`
	AircraftClassificationParentID *uuid.UUID `json:"aircraft_classification_parent_id,omitempty"`
}

type AircraftClassificationUpdateDTO struct {
	AircraftClassificationName     *string    `json:"aircraft_classification_name,omitempty" validate:"omitempty,max=120"`
	AircraftClassificationParentID *uuid.UUID `json:"aircraft_classification_parent_id,omitempty"`
}

func AircraftClassificationCreateDTOToModel(in AircraftClassificationCreateDTO, fboID uuid.UUID) model.AircraftClassification {
	return model.AircraftClassification{
		AircraftClassificationFBOLocationID: fboID,
		AircraftClassificationName:          strings.TrimSpace(in.AircraftClassificationName),
		AircraftClassificationParentID:      in.AircraftClassificationParentID,
	}
}

// --- Aircraft types ---

type AircraftTypeCreateDTO struct {
	AircraftTypeName                        string           `json:"aircraft_type_name" validate:"required,max=120"`
	AircraftTypeBaseMinFuelGallonsForWaiver decimal.Decimal  `json:"aircraft_type_base_min_fuel_gallons_for_waiver"`
	AircraftTypeDefaultClassificationID     *uuid.UUID       `json:"aircraft_type_default_classification_id,omitempty"`
	AircraftTypeDefaultMaxGrossWeight       *decimal.Decimal `json:"aircraft_type_default_max_gross_weight,omitempty"`
}

type AircraftTypeUpdateDTO struct {
	AircraftTypeName                        *string          `json:"aircraft_type_name,omitempty" validate:"omitempty,max=120"`
	AircraftTypeBaseMinFuelGallonsForWaiver *decimal.Decimal `json:"aircraft_type_base_min_fuel_gallons_for_waiver,omitempty"`
	AircraftTypeDefaultClassificationID     *uuid.UUID       `json:"aircraft_type_default_classification_id,omitempty"`
	AircraftTypeDefaultMaxGrossWeight       *decimal.Decimal `json:"aircraft_type_default_max_gross_weight,omitempty"`
}

func AircraftTypeCreateDTOToModel(in AircraftTypeCreateDTO, fboID uuid.UUID) model.AircraftType {
	return model.AircraftType{
		AircraftTypeFBOLocationID:               fboID,
		AircraftTypeName:                        strings.TrimSpace(in.AircraftTypeName),
		AircraftTypeBaseMinFuelGallonsForWaiver: in.AircraftTypeBaseMinFuelGallonsForWaiver,
		AircraftTypeDefaultClassificationID:     in.AircraftTypeDefaultClassificationID,
		AircraftTypeDefaultMaxGrossWeight:       in.AircraftTypeDefaultMaxGrossWeight,
	}
}

func ApplyAircraftTypeUpdate(m *model.AircraftType, in AircraftTypeUpdateDTO) {
	if in.AircraftTypeName != nil {
		m.AircraftTypeName = strings.TrimSpace(*in.AircraftTypeName)
	}
	if in.AircraftTypeBaseMinFuelGallonsForWaiver != nil {
		m.AircraftTypeBaseMinFuelGallonsForWaiver = *in.AircraftTypeBaseMinFuelGallonsForWaiver
	}
	if in.AircraftTypeDefaultClassificationID != nil {
		m.AircraftTypeDefaultClassificationID = in.AircraftTypeDefaultClassificationID
	}
	if in.AircraftTypeDefaultMaxGrossWeight != nil {
		m.AircraftTypeDefaultMaxGrossWeight = in.AircraftTypeDefaultMaxGrossWeight
	}
}

// --- Per-FBO aircraft type config ---

type FBOAircraftTypeConfigUpsertDTO struct {
	FBOAircraftTypeConfigAircraftTypeID          uuid.UUID       `json:"fbo_aircraft_type_config_aircraft_type_id" validate:"required"`
	FBOAircraftTypeConfigMinFuelGallonsForWaiver decimal.Decimal `json:"fbo_aircraft_type_config_min_fuel_gallons_for_waiver"`
}

func FBOAircraftTypeConfigUpsertDTOToModel(in FBOAircraftTypeConfigUpsertDTO, fboID uuid.UUID) model.FBOAircraftTypeConfig {
	return model.FBOAircraftTypeConfig{
		FBOAircraftTypeConfigFBOLocationID:           fboID,
		FBOAircraftTypeConfigAircraftTypeID:          in.FBOAircraftTypeConfigAircraftTypeID,
		FBOAircraftTypeConfigMinFuelGallonsForWaiver: in.FBOAircraftTypeConfigMinFuelGallonsForWaiver,
	}
}

// --- Aircraft ---

type AircraftCreateDTO struct {
	AircraftTailNumber     string     `json:"aircraft_tail_number" validate:"required,max=20"`
	AircraftAircraftTypeID uuid.UUID  `json:"aircraft_aircraft_type_id" validate:"required"`
	AircraftFuelType       string     `json:"aircraft_fuel_type" validate:"required,max=30"`
	AircraftCustomerID     *uuid.UUID `json:"aircraft_customer_id,omitempty"`
}

type AircraftUpdateDTO struct {
	AircraftAircraftTypeID *uuid.UUID `json:"aircraft_aircraft_type_id,omitempty"`
	AircraftFuelType       *string    `json:"aircraft_fuel_type,omitempty" validate:"omitempty,max=30"`
	AircraftCustomerID     *uuid.UUID `json:"aircraft_customer_id,omitempty"`
}

func AircraftCreateDTOToModel(in AircraftCreateDTO) model.Aircraft {
	return model.Aircraft{
		AircraftTailNumber:     strings.ToUpper(strings.TrimSpace(in.AircraftTailNumber)),
		AircraftAircraftTypeID: in.AircraftAircraftTypeID,
		AircraftFuelType:       strings.TrimSpace(in.AircraftFuelType),
		AircraftCustomerID:     in.AircraftCustomerID,
	}
}

func ApplyAircraftUpdate(m *model.Aircraft, in AircraftUpdateDTO) {
	if in.AircraftAircraftTypeID != nil {
		m.AircraftAircraftTypeID = *in.AircraftAircraftTypeID
	}
	if in.AircraftFuelType != nil {
		m.AircraftFuelType = strings.TrimSpace(*in.AircraftFuelType)
	}
	if in.AircraftCustomerID != nil {
		m.AircraftCustomerID = in.AircraftCustomerID
	}
}
