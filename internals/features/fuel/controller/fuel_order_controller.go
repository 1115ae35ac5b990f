// file: internals/features/fuel/controller/fuel_order_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/fuel/dto"
	model "fbofuel_backend/internals/features/fuel/model"
	service "fbofuel_backend/internals/features/fuel/service"
	helper "fbofuel_backend/internals/helpers"
)

type FuelOrderController struct {
	DB        *gorm.DB
	Service   *service.FuelOrderService
	Validator *validator.Validate
}

func NewFuelOrderController(db *gorm.DB) *FuelOrderController {
	return &FuelOrderController{
		DB:        db,
		Service:   service.NewFuelOrderService(db),
		Validator: validator.New(),
	}
}

func parseFBOID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("fbo_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "fbo_id invalid")
	}
	return id, nil
}

// ========== Create ==========
func (ctl *FuelOrderController) Create(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FuelOrderCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.FuelOrderRequestedGallons.Sign() <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "requested gallons must be positive")
	}

	order := dto.FuelOrderCreateDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fuel order created", order)
}

// ========== List ==========
func (ctl *FuelOrderController) List(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.FuelOrder{}).
		Where("fuel_order_fbo_location_id = ?", fboID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		st := model.FuelOrderStatus(strings.ToLower(status))
		if !st.IsValid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown fuel order status")
		}
		q = q.Where("fuel_order_status = ?", st)
	}
	if tail := strings.TrimSpace(c.Query("tail_number")); tail != "" {
		q = q.Where("fuel_order_tail_number = ?", strings.ToUpper(tail))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var orders []model.FuelOrder
	if err := q.Order("fuel_order_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", orders, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Get by ID ==========
func (ctl *FuelOrderController) GetByID(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel_order_id invalid")
	}

	var order model.FuelOrder
	if err := ctl.DB.WithContext(c.Context()).
		First(&order, "fuel_order_id = ? AND fuel_order_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fuel order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	receiptID, err := service.ActiveReceiptID(ctl.DB.WithContext(c.Context()), order.FuelOrderID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	order.FuelOrderReceiptID = receiptID

	return helper.JsonOK(c, "ok", order)
}

// ========== Patch details ==========
func (ctl *FuelOrderController) Patch(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel_order_id invalid")
	}

	var req dto.FuelOrderUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.FuelOrderRequestedGallons != nil && req.FuelOrderRequestedGallons.Sign() <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "requested gallons must be positive")
	}

	order, err := ctl.Service.UpdateDetails(c.Context(), fboID, id, func(m *model.FuelOrder) {
		dto.ApplyFuelOrderUpdate(m, req)
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "fuel order updated", order)
}

// ========== Patch status ==========
func (ctl *FuelOrderController) PatchStatus(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel_order_id invalid")
	}

	var req dto.FuelOrderStatusDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	order, err := ctl.Service.UpdateStatus(c.Context(), fboID, id, service.StatusChange{
		NextStatus:        model.FuelOrderStatus(strings.ToLower(string(req.FuelOrderStatus))),
		ChangeVersion:     req.FuelOrderChangeVersion,
		GallonsDispensed:  req.FuelOrderGallonsDispensed,
		StartMeterReading: req.FuelOrderStartMeterReading,
		EndMeterReading:   req.FuelOrderEndMeterReading,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "fuel order status updated", order)
}

// ========== Complete ==========
// Shortcut for the fueler flow: moves fueling → completed with the dispensed
// gallons and meter readings in one call.
func (ctl *FuelOrderController) Complete(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel_order_id invalid")
	}

	var req dto.FuelOrderCompleteDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	order, err := ctl.Service.UpdateStatus(c.Context(), fboID, id, service.StatusChange{
		NextStatus:        model.FuelOrderStatusCompleted,
		ChangeVersion:     req.FuelOrderChangeVersion,
		GallonsDispensed:  &req.FuelOrderGallonsDispensed,
		StartMeterReading: req.FuelOrderStartMeterReading,
		EndMeterReading:   req.FuelOrderEndMeterReading,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "fuel order completed", order)
}

// ========== Fuel prices ==========
func (ctl *FuelOrderController) CreateFuelPrice(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FuelPriceCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.FuelPricePricePerGallon.Sign() <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "price per gallon must be positive")
	}
	req.FuelPriceFuelType = service.NormalizeFuelType(req.FuelPriceFuelType)

	price := dto.FuelPriceCreateDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).Create(&price).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fuel price created", price)
}

func (ctl *FuelOrderController) ListFuelPrices(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.FuelPrice{}).
		Where("fuel_price_fbo_location_id = ?", fboID)

	if fuelType := strings.TrimSpace(c.Query("fuel_type")); fuelType != "" {
		q = q.Where("fuel_price_fuel_type = ?", service.NormalizeFuelType(fuelType))
	}

	var prices []model.FuelPrice
	if err := q.Order("fuel_price_effective_at DESC").
		Limit(100).
		Find(&prices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", prices)
}
