package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL fuel_orders ---------------------------------------------------
// ChangeVersion is the optimistic counter guarding CSR-vs-fueler conflicts:
// every mutating update bumps it, and status PATCHes carrying a stale
// expected version are rejected with a conflict.
type FuelOrder struct {
	FuelOrderID uuid.UUID `json:"fuel_order_id" gorm:"column:fuel_order_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	FuelOrderFBOLocationID uuid.UUID `json:"fuel_order_fbo_location_id" gorm:"column:fuel_order_fbo_location_id;type:uuid;not null;index"`

	FuelOrderTailNumber string     `json:"fuel_order_tail_number" gorm:"column:fuel_order_tail_number;type:varchar(20);not null;index"`
	FuelOrderAircraftID *uuid.UUID `json:"fuel_order_aircraft_id,omitempty" gorm:"column:fuel_order_aircraft_id;type:uuid;index"`
	FuelOrderCustomerID *uuid.UUID `json:"fuel_order_customer_id,omitempty" gorm:"column:fuel_order_customer_id;type:uuid;index"`

	FuelOrderFuelType         string           `json:"fuel_order_fuel_type" gorm:"column:fuel_order_fuel_type;type:varchar(30);not null"`
	FuelOrderRequestedGallons decimal.Decimal  `json:"fuel_order_requested_gallons" gorm:"column:fuel_order_requested_gallons;type:numeric(12,2);not null;default:0"`
	FuelOrderGallonsDispensed *decimal.Decimal `json:"fuel_order_gallons_dispensed,omitempty" gorm:"column:fuel_order_gallons_dispensed;type:numeric(12,2)"`
	FuelOrderStartMeterReading *decimal.Decimal `json:"fuel_order_start_meter_reading,omitempty" gorm:"column:fuel_order_start_meter_reading;type:numeric(14,2)"`
	FuelOrderEndMeterReading   *decimal.Decimal `json:"fuel_order_end_meter_reading,omitempty" gorm:"column:fuel_order_end_meter_reading;type:numeric(14,2)"`

	FuelOrderAssignedLSTUserID *uuid.UUID `json:"fuel_order_assigned_lst_user_id,omitempty" gorm:"column:fuel_order_assigned_lst_user_id;type:uuid;index"`
	FuelOrderAssignedTruckID   *uuid.UUID `json:"fuel_order_assigned_truck_id,omitempty" gorm:"column:fuel_order_assigned_truck_id;type:uuid"`

	FuelOrderStatus      FuelOrderStatus `json:"fuel_order_status" gorm:"column:fuel_order_status;type:varchar(20);not null;default:'dispatched';index"`
	FuelOrderCompletedAt *time.Time      `json:"fuel_order_completed_at,omitempty" gorm:"column:fuel_order_completed_at;type:timestamptz"`

	// Optimistic counter (see type comment)
	FuelOrderChangeVersion int `json:"fuel_order_change_version" gorm:"column:fuel_order_change_version;type:int;not null;default:0"`

	// Id of the order's non-void receipt, hydrated on single-order reads.
	FuelOrderReceiptID *uuid.UUID `json:"fuel_order_receipt_id,omitempty" gorm:"-"`

	FuelOrderCreatedAt time.Time      `json:"fuel_order_created_at" gorm:"column:fuel_order_created_at;type:timestamptz;not null;autoCreateTime"`
	FuelOrderUpdatedAt time.Time      `json:"fuel_order_updated_at" gorm:"column:fuel_order_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FuelOrderDeletedAt gorm.DeletedAt `json:"-" gorm:"column:fuel_order_deleted_at;type:timestamptz;index"`
}

func (FuelOrder) TableName() string { return "fuel_orders" }

func (m *FuelOrder) BeforeCreate(tx *gorm.DB) (err error) {
	m.FuelOrderTailNumber = strings.ToUpper(strings.TrimSpace(m.FuelOrderTailNumber))
	if strings.TrimSpace(string(m.FuelOrderStatus)) == "" {
		m.FuelOrderStatus = FuelOrderStatusDispatched
	}
	return nil
}

// BeforeUpdate bumps the optimistic counter. Services mutate fuel orders via
// full-model Save so this hook always fires.
func (m *FuelOrder) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FuelOrderChangeVersion++
	return nil
}
