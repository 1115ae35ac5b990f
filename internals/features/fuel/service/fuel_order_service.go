// file: internals/features/fuel/service/fuel_order_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	receiptmodel "fbofuel_backend/internals/features/billing/receipts/model"
	model "fbofuel_backend/internals/features/fuel/model"
)

type FuelOrderService struct {
	DB *gorm.DB
}

func NewFuelOrderService(db *gorm.DB) *FuelOrderService {
	return &FuelOrderService{DB: db}
}

// StatusChange carries a requested transition plus the optimistic version the
// caller last observed.
type StatusChange struct {
	NextStatus    model.FuelOrderStatus
	ChangeVersion int

	GallonsDispensed  *decimal.Decimal
	StartMeterReading *decimal.Decimal
	EndMeterReading   *decimal.Decimal
}

// HasActiveReceipt reports whether a non-void receipt references the order.
// Such an order is locked against further edits.
func HasActiveReceipt(tx *gorm.DB, fuelOrderID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&receiptmodel.Receipt{}).
		Where("receipt_fuel_order_id = ? AND receipt_status <> ?", fuelOrderID, receiptmodel.ReceiptStatusVoid).
		Count(&count).Error
	return count > 0, err
}

// ActiveReceiptID returns the id of the order's non-void receipt, nil when
// no receipt (or only voided ones) exists.
func ActiveReceiptID(tx *gorm.DB, fuelOrderID uuid.UUID) (*uuid.UUID, error) {
	var receipt receiptmodel.Receipt
	err := tx.Select("receipt_id").
		Where("receipt_fuel_order_id = ? AND receipt_status <> ?", fuelOrderID, receiptmodel.ReceiptStatusVoid).
		First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt.ReceiptID, nil
}

func (s *FuelOrderService) lockOrder(tx *gorm.DB, fboID, orderID uuid.UUID) (*model.FuelOrder, error) {
	var order model.FuelOrder
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "fuel_order_id = ? AND fuel_order_fbo_location_id = ?", orderID, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "fuel order not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &order, nil
}

// UpdateStatus applies one step of the dispatch chain.
func (s *FuelOrderService) UpdateStatus(ctx context.Context, fboID, orderID uuid.UUID, in StatusChange) (*model.FuelOrder, error) {
	var updated *model.FuelOrder

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.lockOrder(tx, fboID, orderID)
		if err != nil {
			return err
		}

		if order.FuelOrderChangeVersion != in.ChangeVersion {
			return fiber.NewError(fiber.StatusConflict, "fuel order was modified by another request")
		}

		locked, err := HasActiveReceipt(tx, order.FuelOrderID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if locked {
			return fiber.NewError(fiber.StatusBadRequest, "fuel order has an active receipt and can no longer be modified")
		}

		if !in.NextStatus.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest, "unknown fuel order status")
		}
		if !order.FuelOrderStatus.CanTransitionTo(in.NextStatus) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("cannot move fuel order from %s to %s", order.FuelOrderStatus, in.NextStatus))
		}

		if in.NextStatus == model.FuelOrderStatusCompleted {
			if in.GallonsDispensed == nil || in.GallonsDispensed.Sign() <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "completing a fuel order requires gallons dispensed")
			}
			order.FuelOrderGallonsDispensed = in.GallonsDispensed
			order.FuelOrderStartMeterReading = in.StartMeterReading
			order.FuelOrderEndMeterReading = in.EndMeterReading
			now := time.Now().UTC()
			order.FuelOrderCompletedAt = &now
		}

		order.FuelOrderStatus = in.NextStatus
		if err := tx.Save(order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateDetails edits order fields that are safe before billing starts.
func (s *FuelOrderService) UpdateDetails(ctx context.Context, fboID, orderID uuid.UUID, apply func(*model.FuelOrder)) (*model.FuelOrder, error) {
	var updated *model.FuelOrder

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.lockOrder(tx, fboID, orderID)
		if err != nil {
			return err
		}

		locked, err := HasActiveReceipt(tx, order.FuelOrderID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if locked {
			return fiber.NewError(fiber.StatusBadRequest, "fuel order has an active receipt and can no longer be modified")
		}

		apply(order)
		if err := tx.Save(order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
