package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fbofuel_backend/internals/constants"
	feemodel "fbofuel_backend/internals/features/billing/fees/model"
	model "fbofuel_backend/internals/features/billing/receipts/model"
	custmodel "fbofuel_backend/internals/features/customers/model"
	fleetmodel "fbofuel_backend/internals/features/fleet/model"
	fuelmodel "fbofuel_backend/internals/features/fuel/model"
	fuelservice "fbofuel_backend/internals/features/fuel/service"
)

// ReceiptService owns the receipt state machine:
// draft → generated → paid, with generated|paid → void (terminal).
// Every operation runs inside one transaction; typed *fiber.Error values
// carry the status the HTTP layer should answer with.
type ReceiptService struct {
	DB *gorm.DB
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	return &ReceiptService{DB: db}
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// =======================
// DRAFT CREATION
// =======================

// orderInFBO hides fuel orders outside the caller's FBO location.
func orderInFBO(order *fuelmodel.FuelOrder, fboID uuid.UUID) error {
	if order.FuelOrderFBOLocationID != fboID {
		return fiber.NewError(fiber.StatusNotFound, "fuel order not found")
	}
	return nil
}

// CreateDraftFromFuelOrder creates the DRAFT receipt for a completed fuel
// order, snapshotting tail number, aircraft type, fuel type, quantity, and
// unit price. A prior VOIDed receipt does not block creation
// (void-and-recreate); any non-voided receipt does. Orders outside fboID
// answer 404 so receipts can never cross FBO locations.
func (s *ReceiptService) CreateDraftFromFuelOrder(ctx context.Context, fboID, fuelOrderID, userID uuid.UUID) (*model.Receipt, error) {
	var created *model.Receipt

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order fuelmodel.FuelOrder
		if err := tx.First(&order, "fuel_order_id = ?", fuelOrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "fuel order not found")
			}
			return err
		}
		if err := orderInFBO(&order, fboID); err != nil {
			return err
		}

		if order.FuelOrderStatus != fuelmodel.FuelOrderStatusCompleted {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("cannot create receipt for fuel order with status %s", order.FuelOrderStatus))
		}

		var existing int64
		if err := tx.Model(&model.Receipt{}).
			Where("receipt_fuel_order_id = ? AND receipt_status <> ?", order.FuelOrderID, model.ReceiptStatusVoid).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "fuel order already has a receipt")
		}

		aircraftType, err := s.aircraftTypeForOrder(tx, &order)
		if err != nil {
			return err
		}

		if order.FuelOrderGallonsDispensed == nil {
			return fiber.NewError(fiber.StatusBadRequest, "fuel order has no gallons dispensed")
		}

		customerID, err := s.resolveOrCreateCustomer(tx, &order)
		if err != nil {
			return err
		}

		fuelType := fuelservice.NormalizeFuelType(order.FuelOrderFuelType)
		unitPrice := fuelservice.CurrentFuelPrice(ctx, tx, order.FuelOrderFBOLocationID, fuelType)

		quantity := *order.FuelOrderGallonsDispensed
		fuelSubtotal := quantity.Mul(unitPrice).Round(2)

		receipt := model.Receipt{
			ReceiptFBOLocationID:                    order.FuelOrderFBOLocationID,
			ReceiptFuelOrderID:                      order.FuelOrderID,
			ReceiptCustomerID:                       customerID,
			ReceiptStatus:                           model.ReceiptStatusDraft,
			ReceiptAircraftTailNumberAtReceiptTime:  strings.ToUpper(strings.TrimSpace(order.FuelOrderTailNumber)),
			ReceiptAircraftTypeAtReceiptTime:        aircraftType.AircraftTypeName,
			ReceiptAircraftTypeIDAtReceiptTime:      aircraftType.AircraftTypeID,
			ReceiptFuelTypeAtReceiptTime:            fuelType,
			ReceiptFuelQuantityGallonsAtReceiptTime: &quantity,
			ReceiptFuelUnitPriceAtReceiptTime:       unitPrice,
			ReceiptFuelSubtotal:                     fuelSubtotal,
			ReceiptGrandTotalAmount:                 fuelSubtotal,
			ReceiptCreatedByUserID:                  userID,
		}
		if err := tx.Create(&receipt).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "fuel order already has a receipt")
			}
			return err
		}

		fuelLine := model.ReceiptLineItem{
			ReceiptLineItemReceiptID:   receipt.ReceiptID,
			ReceiptLineItemType:        model.LineItemTypeFuel,
			ReceiptLineItemDescription: "Fuel",
			ReceiptLineItemQuantity:    quantity,
			ReceiptLineItemUnitPrice:   unitPrice,
			ReceiptLineItemAmount:      fuelSubtotal,
			ReceiptLineItemIsTaxable:   true,
		}
		if err := tx.Create(&fuelLine).Error; err != nil {
			return err
		}

		receipt.ReceiptLineItems = []model.ReceiptLineItem{fuelLine}
		created = &receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// aircraftTypeForOrder walks order → aircraft → aircraft type. A completed
// order without its aircraft record is a data-integrity failure: log the
// detail, answer a generic 500.
func (s *ReceiptService) aircraftTypeForOrder(tx *gorm.DB, order *fuelmodel.FuelOrder) (*fleetmodel.AircraftType, error) {
	var aircraft fleetmodel.Aircraft
	var err error
	if order.FuelOrderAircraftID != nil {
		err = tx.First(&aircraft, "aircraft_id = ?", *order.FuelOrderAircraftID).Error
	} else {
		err = tx.First(&aircraft, "aircraft_tail_number = ?", strings.ToUpper(order.FuelOrderTailNumber)).Error
	}
	if err != nil {
		log.Printf("[ERROR] fuel order %s is missing its aircraft record: %v", order.FuelOrderID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "fuel order data is incomplete")
	}

	var aircraftType fleetmodel.AircraftType
	if err := tx.First(&aircraftType, "aircraft_type_id = ?", aircraft.AircraftAircraftTypeID).Error; err != nil {
		log.Printf("[ERROR] aircraft %s references missing aircraft type %s: %v",
			aircraft.AircraftID, aircraft.AircraftAircraftTypeID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "fuel order data is incomplete")
	}
	return &aircraftType, nil
}

// resolveOrCreateCustomer returns the order's customer, creating a
// placeholder named after the tail number when the order has none.
func (s *ReceiptService) resolveOrCreateCustomer(tx *gorm.DB, order *fuelmodel.FuelOrder) (uuid.UUID, error) {
	if order.FuelOrderCustomerID != nil {
		var customer custmodel.Customer
		if err := tx.First(&customer, "customer_id = ?", *order.FuelOrderCustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "fuel order customer not found")
			}
			return uuid.Nil, err
		}
		return customer.CustomerID, nil
	}

	tail := strings.ToUpper(strings.TrimSpace(order.FuelOrderTailNumber))
	placeholder := custmodel.Customer{
		CustomerName:          tail,
		CustomerEmail:         fmt.Sprintf("%s@%s", strings.ToLower(tail), constants.PlaceholderEmailDomain),
		CustomerIsPlaceholder: true,
	}
	if err := tx.Create(&placeholder).Error; err != nil {
		return uuid.Nil, err
	}

	order.FuelOrderCustomerID = &placeholder.CustomerID
	if err := tx.Save(order).Error; err != nil {
		return uuid.Nil, err
	}
	return placeholder.CustomerID, nil
}

// =======================
// DRAFT MUTATION
// =======================

// DraftUpdate carries the editable fields of a DRAFT receipt. Mutation never
// recomputes; recalculation is a separate explicit step.
type DraftUpdate struct {
	CustomerID         *uuid.UUID
	AircraftTypeID     *uuid.UUID
	Notes              *string
	AdditionalServices []AdditionalServiceInput
}

func (s *ReceiptService) UpdateDraft(ctx context.Context, receiptID uuid.UUID, in DraftUpdate, userID uuid.UUID) (*model.Receipt, error) {
	var updated *model.Receipt

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.IsMutable() {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("receipt with status %s cannot be updated", receipt.ReceiptStatus))
		}

		if in.CustomerID != nil {
			var customer custmodel.Customer
			if err := tx.First(&customer, "customer_id = ?", *in.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "customer not found")
				}
				return err
			}
			receipt.ReceiptCustomerID = customer.CustomerID
		}
		if in.AircraftTypeID != nil {
			var aircraftType fleetmodel.AircraftType
			if err := tx.First(&aircraftType, "aircraft_type_id = ?", *in.AircraftTypeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "aircraft type not found")
				}
				return err
			}
			receipt.ReceiptAircraftTypeIDAtReceiptTime = aircraftType.AircraftTypeID
			receipt.ReceiptAircraftTypeAtReceiptTime = aircraftType.AircraftTypeName
		}
		if in.Notes != nil {
			receipt.ReceiptNotes = in.Notes
		}
		if in.AdditionalServices != nil {
			raw, err := json.Marshal(in.AdditionalServices)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid additional services")
			}
			receipt.ReceiptAdditionalServices = datatypes.JSON(raw)
		}
		receipt.ReceiptUpdatedByUserID = &userID

		if err := tx.Save(receipt).Error; err != nil {
			return err
		}
		updated = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, updated.ReceiptID)
}

// =======================
// FEE CALCULATION
// =======================

// CalculateAndUpdateDraft runs the fee engine for a draft and replaces all
// previously stored line items with the freshly computed set (idempotent:
// same inputs, same totals, same line-item count). Passing nil services
// falls back to the draft's stored additional-services intent.
func (s *ReceiptService) CalculateAndUpdateDraft(ctx context.Context, receiptID uuid.UUID, services []AdditionalServiceInput, userID uuid.UUID) (*model.Receipt, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.IsMutable() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("fees can only be calculated on a draft receipt (status is %s)", receipt.ReceiptStatus))
		}
		if receipt.ReceiptFuelOrderID == uuid.Nil {
			return fiber.NewError(fiber.StatusBadRequest, "receipt has no associated fuel order")
		}
		if receipt.ReceiptFuelQuantityGallonsAtReceiptTime == nil {
			return fiber.NewError(fiber.StatusBadRequest, "receipt has no fuel quantity")
		}
		if receipt.ReceiptAircraftTypeIDAtReceiptTime == uuid.Nil {
			return fiber.NewError(fiber.StatusBadRequest, "receipt has no aircraft type")
		}

		if services == nil {
			services = storedAdditionalServices(receipt)
		} else {
			raw, _ := json.Marshal(services)
			receipt.ReceiptAdditionalServices = datatypes.JSON(raw)
		}

		input, err := s.buildCalculationInput(tx, receipt, services)
		if err != nil {
			return err
		}
		result := CalculateForTransaction(*input)

		// Full replacement: delete every previous line, insert the new set.
		if err := tx.Unscoped().
			Where("receipt_line_item_receipt_id = ?", receipt.ReceiptID).
			Delete(&model.ReceiptLineItem{}).Error; err != nil {
			return err
		}
		lines := make([]model.ReceiptLineItem, 0, len(result.LineItems))
		for _, li := range result.LineItems {
			lines = append(lines, model.ReceiptLineItem{
				ReceiptLineItemReceiptID:      receipt.ReceiptID,
				ReceiptLineItemType:           li.Type,
				ReceiptLineItemDescription:    li.Description,
				ReceiptLineItemFeeCodeApplied: li.FeeCode,
				ReceiptLineItemQuantity:       li.Quantity,
				ReceiptLineItemUnitPrice:      li.UnitPrice,
				ReceiptLineItemAmount:         li.Amount,
				ReceiptLineItemIsTaxable:      li.IsTaxable,
			})
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		receipt.ReceiptFuelSubtotal = result.FuelSubtotal
		receipt.ReceiptTotalFeesAmount = result.TotalFeesAmount
		receipt.ReceiptTotalWaiversAmount = result.TotalWaiversAmount
		receipt.ReceiptTaxAmount = result.TaxAmount
		receipt.ReceiptGrandTotalAmount = result.GrandTotalAmount
		receipt.ReceiptIsCAAApplied = result.IsCAAApplied
		receipt.ReceiptUpdatedByUserID = &userID

		return tx.Save(receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, receiptID)
}

func storedAdditionalServices(receipt *model.Receipt) []AdditionalServiceInput {
	if len(receipt.ReceiptAdditionalServices) == 0 {
		return nil
	}
	var services []AdditionalServiceInput
	if err := json.Unmarshal(receipt.ReceiptAdditionalServices, &services); err != nil {
		log.Printf("[WARN] receipt %s carries unreadable additional services: %v", receipt.ReceiptID, err)
		return nil
	}
	return services
}

// buildCalculationInput fetches the fee configuration the engine needs:
// CAA status, classification, rules, overrides, tiers, and the FBO-specific
// minimum-fuel override when present.
func (s *ReceiptService) buildCalculationInput(tx *gorm.DB, receipt *model.Receipt, services []AdditionalServiceInput) (*CalculationInput, error) {
	var customer custmodel.Customer
	if err := tx.First(&customer, "customer_id = ?", receipt.ReceiptCustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "receipt customer not found")
		}
		return nil, err
	}

	var aircraftType fleetmodel.AircraftType
	if err := tx.First(&aircraftType, "aircraft_type_id = ?", receipt.ReceiptAircraftTypeIDAtReceiptTime).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "receipt aircraft type not found")
		}
		return nil, err
	}

	minForWaiver := aircraftType.AircraftTypeBaseMinFuelGallonsForWaiver
	var typeConfig fleetmodel.FBOAircraftTypeConfig
	err := tx.First(&typeConfig,
		"fbo_aircraft_type_config_fbo_location_id = ? AND fbo_aircraft_type_config_aircraft_type_id = ?",
		receipt.ReceiptFBOLocationID, aircraftType.AircraftTypeID).Error
	if err == nil {
		minForWaiver = typeConfig.FBOAircraftTypeConfigMinFuelGallonsForWaiver
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rules []feemodel.FeeRule
	if err := tx.Where("fee_rule_fbo_location_id = ?", receipt.ReceiptFBOLocationID).Find(&rules).Error; err != nil {
		return nil, err
	}
	var overrides []feemodel.FeeRuleOverride
	if err := tx.
		Joins("JOIN fee_rules ON fee_rules.fee_rule_id = fee_rule_overrides.fee_rule_override_fee_rule_id").
		Where("fee_rules.fee_rule_fbo_location_id = ? AND fee_rule_overrides.fee_rule_override_deleted_at IS NULL",
			receipt.ReceiptFBOLocationID).
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	var tiers []feemodel.WaiverTier
	if err := tx.Where("waiver_tier_fbo_location_id = ?", receipt.ReceiptFBOLocationID).
		Order("waiver_tier_tier_priority ASC").
		Find(&tiers).Error; err != nil {
		return nil, err
	}

	return &CalculationInput{
		FBOLocationID:           receipt.ReceiptFBOLocationID,
		AircraftTypeID:          aircraftType.AircraftTypeID,
		ClassificationID:        aircraftType.AircraftTypeDefaultClassificationID,
		IsCAAMember:             customer.CustomerIsCAAMember,
		FuelUpliftGallons:       *receipt.ReceiptFuelQuantityGallonsAtReceiptTime,
		FuelPricePerGallon:      receipt.ReceiptFuelUnitPriceAtReceiptTime,
		MinFuelGallonsForWaiver: minForWaiver,
		FeeRules:                rules,
		Overrides:               overrides,
		WaiverTiers:             tiers,
		AdditionalServices:      services,
		TaxRatePercent:          constants.TaxRatePercent(),
	}, nil
}

// =======================
// GENERATION / PAYMENT / VOID
// =======================

// GenerateReceipt finalizes a calculated draft: assigns the next
// R-YYYYMMDD-NNNN number for the FBO's UTC day and moves to GENERATED.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, receiptID, userID uuid.UUID) (*model.Receipt, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.CanGenerate() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("only draft receipts can be generated (status is %s)", receipt.ReceiptStatus))
		}

		var lineCount int64
		if err := tx.Model(&model.ReceiptLineItem{}).
			Where("receipt_line_item_receipt_id = ?", receipt.ReceiptID).
			Count(&lineCount).Error; err != nil {
			return err
		}
		if lineCount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cannot generate a receipt with uncalculated fees")
		}

		now := time.Now().UTC()
		var numbers []string
		err = tx.Model(&model.Receipt{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("receipt_fbo_location_id = ? AND receipt_number LIKE ?",
				receipt.ReceiptFBOLocationID, ReceiptNumberDayPrefix(now)+"%").
			Order("receipt_number DESC").
			Limit(1).
			Pluck("receipt_number", &numbers).Error
		if err != nil {
			return err
		}
		highest := ""
		if len(numbers) > 0 {
			highest = numbers[0]
		}

		number := NextReceiptNumber(now, highest)
		receipt.ReceiptNumber = &number
		receipt.ReceiptGeneratedAt = &now
		receipt.ReceiptStatus = model.ReceiptStatusGenerated
		receipt.ReceiptUpdatedByUserID = &userID

		if err := tx.Save(receipt).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "receipt number was claimed concurrently, retry")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, receiptID)
}

// MarkAsPaid transitions GENERATED → PAID.
func (s *ReceiptService) MarkAsPaid(ctx context.Context, receiptID, userID uuid.UUID) (*model.Receipt, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.CanMarkPaid() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("only generated receipts can be marked paid (status is %s)", receipt.ReceiptStatus))
		}
		now := time.Now().UTC()
		receipt.ReceiptPaidAt = &now
		receipt.ReceiptStatus = model.ReceiptStatusPaid
		receipt.ReceiptUpdatedByUserID = &userID
		return tx.Save(receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, receiptID)
}

// VoidReceipt cancels a generated (or paid) receipt and writes an audit row
// with the previous status, reason, and actor. Drafts are rejected; they are
// deleted rather than voided.
func (s *ReceiptService) VoidReceipt(ctx context.Context, receiptID, userID uuid.UUID, reason *string) (*model.Receipt, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.CanVoid() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("receipt with status %s cannot be voided", receipt.ReceiptStatus))
		}

		previous := receipt.ReceiptStatus
		receipt.ReceiptStatus = model.ReceiptStatusVoid
		receipt.ReceiptUpdatedByUserID = &userID
		if err := tx.Save(receipt).Error; err != nil {
			return err
		}

		auditCtx, _ := json.Marshal(fiber.Map{
			"receipt_number": receipt.ReceiptNumber,
			"grand_total":    receipt.ReceiptGrandTotalAmount,
		})
		audit := model.ReceiptAuditLog{
			ReceiptAuditLogReceiptID:      receipt.ReceiptID,
			ReceiptAuditLogAction:         "void",
			ReceiptAuditLogPreviousStatus: previous,
			ReceiptAuditLogReason:         reason,
			ReceiptAuditLogUserID:         userID,
			ReceiptAuditLogContext:        datatypes.JSON(auditCtx),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, receiptID)
}

// =======================
// MANUAL WAIVER TOGGLE
// =======================

// ToggleLineItemWaiver flips a manual waiver on one FEE line of a draft:
// creates the offsetting WAIVER line when absent, removes it when present,
// then recomputes the aggregate totals from the current line-item set
// (sum per type) without re-running the full engine.
func (s *ReceiptService) ToggleLineItemWaiver(ctx context.Context, receiptID, lineItemID, userID uuid.UUID) (*model.Receipt, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receipt, err := s.lockReceipt(tx, receiptID)
		if err != nil {
			return err
		}
		if !receipt.ReceiptStatus.IsMutable() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("waivers can only be toggled on a draft receipt (status is %s)", receipt.ReceiptStatus))
		}

		var line model.ReceiptLineItem
		if err := tx.First(&line,
			"receipt_line_item_id = ? AND receipt_line_item_receipt_id = ?",
			lineItemID, receipt.ReceiptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "line item not found")
			}
			return err
		}
		if line.ReceiptLineItemType != model.LineItemTypeFee || line.ReceiptLineItemFeeCodeApplied == nil {
			return fiber.NewError(fiber.StatusBadRequest, "only fee line items can be waived")
		}

		var rule feemodel.FeeRule
		if err := tx.First(&rule,
			"fee_rule_fbo_location_id = ? AND fee_rule_fee_code = ?",
			receipt.ReceiptFBOLocationID, *line.ReceiptLineItemFeeCodeApplied).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "fee rule for line item not found")
			}
			return err
		}
		if !rule.FeeRuleIsManuallyWaivable {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("fee %s is not manually waivable", rule.FeeRuleFeeCode))
		}

		var existingWaiver model.ReceiptLineItem
		err = tx.First(&existingWaiver,
			"receipt_line_item_receipt_id = ? AND receipt_line_item_type = ? AND receipt_line_item_fee_code_applied = ?",
			receipt.ReceiptID, model.LineItemTypeWaiver, *line.ReceiptLineItemFeeCodeApplied).Error
		switch {
		case err == nil:
			if err := tx.Unscoped().Delete(&existingWaiver).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			waiver := model.ReceiptLineItem{
				ReceiptLineItemReceiptID:      receipt.ReceiptID,
				ReceiptLineItemType:           model.LineItemTypeWaiver,
				ReceiptLineItemDescription:    fmt.Sprintf("Manual Waiver (%s)", rule.FeeRuleFeeName),
				ReceiptLineItemFeeCodeApplied: line.ReceiptLineItemFeeCodeApplied,
				ReceiptLineItemQuantity:       decimal.NewFromInt(1),
				ReceiptLineItemUnitPrice:      line.ReceiptLineItemAmount.Neg(),
				ReceiptLineItemAmount:         line.ReceiptLineItemAmount.Neg(),
			}
			if err := tx.Create(&waiver).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var lines []model.ReceiptLineItem
		if err := tx.Where("receipt_line_item_receipt_id = ?", receipt.ReceiptID).Find(&lines).Error; err != nil {
			return err
		}
		applyTotalsFromLineItems(receipt, lines)
		receipt.ReceiptUpdatedByUserID = &userID
		return tx.Save(receipt).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadWithLineItems(ctx, receiptID)
}

// applyTotalsFromLineItems rebuilds the aggregate totals by summing the
// stored line items per type. Waivers are stored negative and reported as a
// positive magnitude.
func applyTotalsFromLineItems(receipt *model.Receipt, lines []model.ReceiptLineItem) {
	fuel, fees, waivers, tax := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, li := range lines {
		switch li.ReceiptLineItemType {
		case model.LineItemTypeFuel:
			fuel = fuel.Add(li.ReceiptLineItemAmount)
		case model.LineItemTypeFee:
			fees = fees.Add(li.ReceiptLineItemAmount)
		case model.LineItemTypeWaiver:
			waivers = waivers.Add(li.ReceiptLineItemAmount.Neg())
		case model.LineItemTypeTax:
			tax = tax.Add(li.ReceiptLineItemAmount)
		}
	}
	receipt.ReceiptFuelSubtotal = fuel
	receipt.ReceiptTotalFeesAmount = fees
	receipt.ReceiptTotalWaiversAmount = waivers
	receipt.ReceiptTaxAmount = tax
	receipt.ReceiptGrandTotalAmount = fuel.Add(fees).Sub(waivers).Add(tax)
}

// =======================
// READS
// =======================

func (s *ReceiptService) lockReceipt(tx *gorm.DB, receiptID uuid.UUID) (*model.Receipt, error) {
	var receipt model.Receipt
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&receipt, "receipt_id = ?", receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "receipt not found")
		}
		return nil, err
	}
	return &receipt, nil
}

func (s *ReceiptService) loadWithLineItems(ctx context.Context, receiptID uuid.UUID) (*model.Receipt, error) {
	var receipt model.Receipt
	if err := s.DB.WithContext(ctx).
		Preload("ReceiptLineItems").
		First(&receipt, "receipt_id = ?", receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "receipt not found")
		}
		return nil, err
	}
	return &receipt, nil
}

// GetReceipt loads one receipt with line items.
func (s *ReceiptService) GetReceipt(ctx context.Context, receiptID uuid.UUID) (*model.Receipt, error) {
	return s.loadWithLineItems(ctx, receiptID)
}
