package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL receipt_line_items ----------------------------------------------
// WAIVER lines carry the fee code they offset and the exact negative of that
// fee's amount, so fee + waiver nets to zero per code.
type ReceiptLineItem struct {
	ReceiptLineItemID uuid.UUID `json:"receipt_line_item_id" gorm:"column:receipt_line_item_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ReceiptLineItemReceiptID uuid.UUID `json:"receipt_line_item_receipt_id" gorm:"column:receipt_line_item_receipt_id;type:uuid;not null;index"`

	ReceiptLineItemType        LineItemType `json:"receipt_line_item_type" gorm:"column:receipt_line_item_type;type:varchar(10);not null"`
	ReceiptLineItemDescription string       `json:"receipt_line_item_description" gorm:"column:receipt_line_item_description;type:varchar(200);not null"`

	ReceiptLineItemFeeCodeApplied *string `json:"receipt_line_item_fee_code_applied,omitempty" gorm:"column:receipt_line_item_fee_code_applied;type:varchar(40);index"`

	ReceiptLineItemQuantity  decimal.Decimal `json:"receipt_line_item_quantity" gorm:"column:receipt_line_item_quantity;type:numeric(12,2);not null;default:1"`
	ReceiptLineItemUnitPrice decimal.Decimal `json:"receipt_line_item_unit_price" gorm:"column:receipt_line_item_unit_price;type:numeric(12,4);not null;default:0"`
	ReceiptLineItemAmount    decimal.Decimal `json:"receipt_line_item_amount" gorm:"column:receipt_line_item_amount;type:numeric(12,2);not null"`

	// Whether this line participates in the taxable base (FUEL and taxable
	// FEE lines only).
	ReceiptLineItemIsTaxable bool `json:"receipt_line_item_is_taxable" gorm:"column:receipt_line_item_is_taxable;type:boolean;not null;default:false"`

	ReceiptLineItemCreatedAt time.Time      `json:"receipt_line_item_created_at" gorm:"column:receipt_line_item_created_at;type:timestamptz;not null;autoCreateTime"`
	ReceiptLineItemUpdatedAt time.Time      `json:"receipt_line_item_updated_at" gorm:"column:receipt_line_item_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ReceiptLineItemDeletedAt gorm.DeletedAt `json:"-" gorm:"column:receipt_line_item_deleted_at;type:timestamptz;index"`
}

func (ReceiptLineItem) TableName() string { return "receipt_line_items" }
