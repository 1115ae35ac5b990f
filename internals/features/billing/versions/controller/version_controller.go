// file: internals/features/billing/versions/controller/version_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/billing/versions/dto"
	service "fbofuel_backend/internals/features/billing/versions/service"
	helper "fbofuel_backend/internals/helpers"
	helperAuth "fbofuel_backend/internals/helpers/auth"
)

type VersionController struct {
	DB        *gorm.DB
	Service   *service.SnapshotService
	Validator *validator.Validate
}

func NewVersionController(db *gorm.DB) *VersionController {
	return &VersionController{
		DB:        db,
		Service:   service.NewSnapshotService(db),
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

// ========== Create (snapshot current configuration) ==========
func (ctl *VersionController) Create(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.FeeScheduleVersionCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	version, err := ctl.Service.CreateVersion(c.Context(), fboID, strings.TrimSpace(req.FeeScheduleVersionName), req.FeeScheduleVersionDescription, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "fee schedule version created", dto.ToVersionListItem(*version))
}

// ========== List ==========
func (ctl *VersionController) List(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	versions, total, err := ctl.Service.ListVersions(c.Context(), fboID, p.Offset, p.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	items := make([]dto.FeeScheduleVersionListItemDTO, 0, len(versions))
	for _, v := range versions {
		items = append(items, dto.ToVersionListItem(v))
	}

	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Restore ==========
func (ctl *VersionController) Restore(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	versionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_schedule_version_id invalid")
	}

	diff, err := ctl.Service.RestoreFromVersion(c.Context(), fboID, versionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result := dto.ToRestoreResult(diff)
	if !result.Restored {
		return helper.JsonOK(c, "configuration already matches this version", result)
	}
	return helper.JsonOK(c, "configuration restored", result)
}
