package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- MODEL receipts ------------------------------------------------------
// The *_at_receipt_time columns snapshot catalog data when the draft is
// created, so later fee/price/type edits never touch existing receipts.
//
// One non-voided receipt per fuel order ("void-and-recreate") is enforced
// at the DB level by a partial unique index created in the SQL migration:
//
//	CREATE UNIQUE INDEX uq_receipts_active_fuel_order
//	  ON receipts (receipt_fuel_order_id)
//	  WHERE receipt_status <> 'void' AND receipt_deleted_at IS NULL;
//
// Concurrent draft creation for the same order therefore loses with a
// unique violation, which the service translates into a 409.
type Receipt struct {
	ReceiptID uuid.UUID `json:"receipt_id" gorm:"column:receipt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant + linkage
	ReceiptFBOLocationID uuid.UUID `json:"receipt_fbo_location_id" gorm:"column:receipt_fbo_location_id;type:uuid;not null;index;uniqueIndex:uq_receipts_number,priority:1"`
	ReceiptFuelOrderID   uuid.UUID `json:"receipt_fuel_order_id" gorm:"column:receipt_fuel_order_id;type:uuid;not null;index"`
	ReceiptCustomerID    uuid.UUID `json:"receipt_customer_id" gorm:"column:receipt_customer_id;type:uuid;not null;index"`

	ReceiptStatus ReceiptStatus `json:"receipt_status" gorm:"column:receipt_status;type:varchar(20);not null;default:'draft';index"`

	// Snapshots at receipt time
	ReceiptAircraftTailNumberAtReceiptTime  string           `json:"receipt_aircraft_tail_number_at_receipt_time" gorm:"column:receipt_aircraft_tail_number_at_receipt_time;type:varchar(20);not null;index"`
	ReceiptAircraftTypeAtReceiptTime       string           `json:"receipt_aircraft_type_at_receipt_time" gorm:"column:receipt_aircraft_type_at_receipt_time;type:varchar(120);not null"`
	ReceiptAircraftTypeIDAtReceiptTime     uuid.UUID        `json:"receipt_aircraft_type_id_at_receipt_time" gorm:"column:receipt_aircraft_type_id_at_receipt_time;type:uuid;not null"`
	ReceiptFuelTypeAtReceiptTime           string           `json:"receipt_fuel_type_at_receipt_time" gorm:"column:receipt_fuel_type_at_receipt_time;type:varchar(30);not null"`
	ReceiptFuelQuantityGallonsAtReceiptTime *decimal.Decimal `json:"receipt_fuel_quantity_gallons_at_receipt_time,omitempty" gorm:"column:receipt_fuel_quantity_gallons_at_receipt_time;type:numeric(12,2)"`
	ReceiptFuelUnitPriceAtReceiptTime      decimal.Decimal  `json:"receipt_fuel_unit_price_at_receipt_time" gorm:"column:receipt_fuel_unit_price_at_receipt_time;type:numeric(12,4);not null"`

	// Monetary totals
	ReceiptFuelSubtotal       decimal.Decimal `json:"receipt_fuel_subtotal" gorm:"column:receipt_fuel_subtotal;type:numeric(12,2);not null;default:0"`
	ReceiptTotalFeesAmount    decimal.Decimal `json:"receipt_total_fees_amount" gorm:"column:receipt_total_fees_amount;type:numeric(12,2);not null;default:0"`
	ReceiptTotalWaiversAmount decimal.Decimal `json:"receipt_total_waivers_amount" gorm:"column:receipt_total_waivers_amount;type:numeric(12,2);not null;default:0"`
	ReceiptTaxAmount          decimal.Decimal `json:"receipt_tax_amount" gorm:"column:receipt_tax_amount;type:numeric(12,2);not null;default:0"`
	ReceiptGrandTotalAmount   decimal.Decimal `json:"receipt_grand_total_amount" gorm:"column:receipt_grand_total_amount;type:numeric(12,2);not null;default:0"`

	ReceiptIsCAAApplied bool `json:"receipt_is_caa_applied" gorm:"column:receipt_is_caa_applied;type:boolean;not null;default:false"`

	// Assigned only at generation; unique per FBO.
	ReceiptNumber *string `json:"receipt_number,omitempty" gorm:"column:receipt_number;type:varchar(20);uniqueIndex:uq_receipts_number,priority:2"`

	ReceiptGeneratedAt *time.Time `json:"receipt_generated_at,omitempty" gorm:"column:receipt_generated_at;type:timestamptz"`
	ReceiptPaidAt      *time.Time `json:"receipt_paid_at,omitempty" gorm:"column:receipt_paid_at;type:timestamptz"`

	// Draft intent: additional services requested for the next calculation,
	// as [{"fee_code":"...","quantity":n}].
	ReceiptAdditionalServices datatypes.JSON `json:"receipt_additional_services,omitempty" gorm:"column:receipt_additional_services;type:jsonb"`
	ReceiptNotes              *string        `json:"receipt_notes,omitempty" gorm:"column:receipt_notes;type:text"`

	ReceiptCreatedByUserID uuid.UUID  `json:"receipt_created_by_user_id" gorm:"column:receipt_created_by_user_id;type:uuid;not null"`
	ReceiptUpdatedByUserID *uuid.UUID `json:"receipt_updated_by_user_id,omitempty" gorm:"column:receipt_updated_by_user_id;type:uuid"`

	ReceiptCreatedAt time.Time      `json:"receipt_created_at" gorm:"column:receipt_created_at;type:timestamptz;not null;autoCreateTime;index"`
	ReceiptUpdatedAt time.Time      `json:"receipt_updated_at" gorm:"column:receipt_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ReceiptDeletedAt gorm.DeletedAt `json:"-" gorm:"column:receipt_deleted_at;type:timestamptz;index"`

	ReceiptLineItems []ReceiptLineItem `json:"receipt_line_items,omitempty" gorm:"foreignKey:ReceiptLineItemReceiptID;references:ReceiptID"`
}

func (Receipt) TableName() string { return "receipts" }

func (m *Receipt) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(string(m.ReceiptStatus)) == "" {
		m.ReceiptStatus = ReceiptStatusDraft
	}
	return nil
}
