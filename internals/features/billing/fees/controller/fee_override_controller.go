// file: internals/features/billing/fees/controller/fee_override_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/billing/fees/dto"
	model "fbofuel_backend/internals/features/billing/fees/model"
	helper "fbofuel_backend/internals/helpers"
)

type FeeOverrideController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeOverrideController(db *gorm.DB) *FeeOverrideController {
	return &FeeOverrideController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ruleInFBO loads a fee rule and checks it belongs to the path FBO.
func (ctl *FeeOverrideController) ruleInFBO(c *fiber.Ctx, ruleID, fboID uuid.UUID) (*model.FeeRule, error) {
	var rule model.FeeRule
	if err := ctl.DB.WithContext(c.Context()).
		First(&rule, "fee_rule_id = ? AND fee_rule_fbo_location_id = ?", ruleID, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "fee rule not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &rule, nil
}

// ========== Create override ==========
func (ctl *FeeOverrideController) CreateOverride(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FeeRuleOverrideCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !req.HasExactlyOneTarget() {
		return helper.JsonError(c, fiber.StatusBadRequest, "override must target exactly one of classification or aircraft type")
	}

	if _, err := ctl.ruleInFBO(c, req.FeeRuleOverrideFeeRuleID, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ov := dto.FeeRuleOverrideCreateDTOToModel(req)
	if err := ctl.DB.WithContext(c.Context()).Create(&ov).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "an override for this target already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fee rule override created", ov)
}

// ========== Patch override ==========
func (ctl *FeeOverrideController) PatchOverride(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_rule_override_id invalid")
	}

	var ov model.FeeRuleOverride
	if err := ctl.DB.WithContext(c.Context()).
		First(&ov, "fee_rule_override_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee rule override not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctl.ruleInFBO(c, ov.FeeRuleOverrideFeeRuleID, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FeeRuleOverrideUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dto.ApplyFeeRuleOverrideUpdate(&ov, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&ov).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "fee rule override updated", ov)
}

// ========== Delete override ==========
func (ctl *FeeOverrideController) DeleteOverride(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_rule_override_id invalid")
	}

	var ov model.FeeRuleOverride
	if err := ctl.DB.WithContext(c.Context()).
		First(&ov, "fee_rule_override_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee rule override not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctl.ruleInFBO(c, ov.FeeRuleOverrideFeeRuleID, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&ov).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "fee rule override deleted", fiber.Map{"fee_rule_override_id": id})
}

// ========== Create waiver tier ==========
func (ctl *FeeOverrideController) CreateWaiverTier(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.WaiverTierCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.WaiverTierFuelUpliftMultiplier.Sign() <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel uplift multiplier must be positive")
	}

	tier := dto.WaiverTierCreateDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).Create(&tier).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "waiver tier created", tier)
}

// ========== List waiver tiers ==========
func (ctl *FeeOverrideController) ListWaiverTiers(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var tiers []model.WaiverTier
	if err := ctl.DB.WithContext(c.Context()).
		Where("waiver_tier_fbo_location_id = ?", fboID).
		Order("waiver_tier_tier_priority ASC").
		Find(&tiers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", tiers)
}

// ========== Patch waiver tier ==========
func (ctl *FeeOverrideController) PatchWaiverTier(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "waiver_tier_id invalid")
	}

	var tier model.WaiverTier
	if err := ctl.DB.WithContext(c.Context()).
		First(&tier, "waiver_tier_id = ? AND waiver_tier_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "waiver tier not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.WaiverTierUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.WaiverTierFuelUpliftMultiplier != nil && req.WaiverTierFuelUpliftMultiplier.Sign() <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuel uplift multiplier must be positive")
	}

	dto.ApplyWaiverTierUpdate(&tier, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&tier).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "waiver tier updated", tier)
}

// ========== Delete waiver tier ==========
func (ctl *FeeOverrideController) DeleteWaiverTier(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "waiver_tier_id invalid")
	}

	var tier model.WaiverTier
	if err := ctl.DB.WithContext(c.Context()).
		First(&tier, "waiver_tier_id = ? AND waiver_tier_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "waiver tier not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&tier).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "waiver tier deleted", fiber.Map{"waiver_tier_id": id})
}
