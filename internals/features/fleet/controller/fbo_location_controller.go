// file: internals/features/fleet/controller/fbo_location_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "fbofuel_backend/internals/features/fleet/model"
	helper "fbofuel_backend/internals/helpers"
)

// FBO locations are provisioned out of band; the API only exposes lookups
// so clients can populate their location switcher.
type FBOLocationController struct {
	DB *gorm.DB
}

func NewFBOLocationController(db *gorm.DB) *FBOLocationController {
	return &FBOLocationController{DB: db}
}

// ========== List ==========
func (ctl *FBOLocationController) List(c *fiber.Ctx) error {
	var locations []model.FBOLocation
	if err := ctl.DB.WithContext(c.Context()).
		Order("fbo_location_code ASC").
		Find(&locations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", locations, nil)
}

// ========== Get by ID ==========
func (ctl *FBOLocationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fbo_location_id invalid")
	}

	var location model.FBOLocation
	if err := ctl.DB.WithContext(c.Context()).
		First(&location, "fbo_location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "FBO location not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", location)
}
