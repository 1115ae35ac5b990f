// file: internals/features/billing/fees/controller/fee_rule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/billing/fees/dto"
	model "fbofuel_backend/internals/features/billing/fees/model"
	helper "fbofuel_backend/internals/helpers"
)

type FeeRuleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeRuleController(db *gorm.DB) *FeeRuleController {
	return &FeeRuleController{
		DB:        db,
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ========== Create ==========
func (ctl *FeeRuleController) Create(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FeeRuleCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	req.FeeRuleFBOLocationID = fboID

	rule := dto.FeeRuleCreateDTOToModel(req)
	if err := ctl.DB.WithContext(c.Context()).Create(&rule).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "fee code already exists for this FBO")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fee rule created", rule)
}

// ========== List ==========
func (ctl *FeeRuleController) List(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.FeeRule{}).
		Where("fee_rule_fbo_location_id = ?", fboID)

	if code := strings.TrimSpace(c.Query("fee_code")); code != "" {
		q = q.Where("fee_rule_fee_code = ?", strings.ToUpper(code))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rules []model.FeeRule
	if err := q.Order("fee_rule_fee_code ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", rules, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Get by ID ==========
func (ctl *FeeRuleController) GetByID(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_rule_id invalid")
	}

	var rule model.FeeRule
	if err := ctl.DB.WithContext(c.Context()).
		Preload("FeeRuleOverrides").
		First(&rule, "fee_rule_id = ? AND fee_rule_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee rule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rule)
}

// ========== Patch ==========
func (ctl *FeeRuleController) Patch(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_rule_id invalid")
	}

	var rule model.FeeRule
	if err := ctl.DB.WithContext(c.Context()).
		First(&rule, "fee_rule_id = ? AND fee_rule_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee rule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.FeeRuleUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	dto.ApplyFeeRuleUpdate(&rule, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&rule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "fee rule updated", rule)
}

// ========== Delete (soft) ==========
func (ctl *FeeRuleController) Delete(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_rule_id invalid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("fee_rule_id = ? AND fee_rule_fbo_location_id = ?", id, fboID).
		Delete(&model.FeeRule{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee rule not found")
	}

	return helper.JsonDeleted(c, "fee rule deleted", fiber.Map{"fee_rule_id": id})
}
