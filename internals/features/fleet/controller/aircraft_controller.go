// file: internals/features/fleet/controller/aircraft_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/fleet/dto"
	model "fbofuel_backend/internals/features/fleet/model"
	helper "fbofuel_backend/internals/helpers"
)

// Aircraft are registry-wide (tail numbers are globally unique), so these
// handlers are not FBO scoped.
type AircraftController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAircraftController(db *gorm.DB) *AircraftController {
	return &AircraftController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *AircraftController) Create(c *fiber.Ctx) error {
	var req dto.AircraftCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	aircraft := dto.AircraftCreateDTOToModel(req)
	if err := ctl.DB.WithContext(c.Context()).Create(&aircraft).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "tail number already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "aircraft created", aircraft)
}

// ========== Get by tail number ==========
func (ctl *AircraftController) GetByTailNumber(c *fiber.Ctx) error {
	tail := strings.ToUpper(strings.TrimSpace(c.Params("tail_number")))
	if tail == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "tail_number required")
	}

	var aircraft model.Aircraft
	if err := ctl.DB.WithContext(c.Context()).
		First(&aircraft, "aircraft_tail_number = ?", tail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "aircraft not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", aircraft)
}

// ========== List ==========
func (ctl *AircraftController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Aircraft{})
	if typeID := strings.TrimSpace(c.Query("aircraft_type_id")); typeID != "" {
		id, err := uuid.Parse(typeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "aircraft_type_id invalid")
		}
		q = q.Where("aircraft_aircraft_type_id = ?", id)
	}
	if customerID := strings.TrimSpace(c.Query("customer_id")); customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
		}
		q = q.Where("aircraft_customer_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var aircraft []model.Aircraft
	if err := q.Order("aircraft_tail_number ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&aircraft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", aircraft, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Patch ==========
func (ctl *AircraftController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "aircraft_id invalid")
	}

	var aircraft model.Aircraft
	if err := ctl.DB.WithContext(c.Context()).
		First(&aircraft, "aircraft_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "aircraft not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.AircraftUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	dto.ApplyAircraftUpdate(&aircraft, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&aircraft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "aircraft updated", aircraft)
}
