// file: internals/features/fleet/controller/fleet_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "fbofuel_backend/internals/features/fleet/dto"
	model "fbofuel_backend/internals/features/fleet/model"
	helper "fbofuel_backend/internals/helpers"
)

type FleetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFleetController(db *gorm.DB) *FleetController {
	return &FleetController{
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

/* ===============================
   Aircraft classifications
=================================*/

func (ctl *FleetController) CreateClassification(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AircraftClassificationCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	classification := dto.AircraftClassificationCreateDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).Create(&classification).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "classification name already exists for this FBO")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "classification created", classification)
}

func (ctl *FleetController) ListClassifications(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var classifications []model.AircraftClassification
	if err := ctl.DB.WithContext(c.Context()).
		Where("aircraft_classification_fbo_location_id = ?", fboID).
		Order("aircraft_classification_name ASC").
		Find(&classifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", classifications)
}

func (ctl *FleetController) PatchClassification(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "aircraft_classification_id invalid")
	}

	var classification model.AircraftClassification
	if err := ctl.DB.WithContext(c.Context()).
		First(&classification, "aircraft_classification_id = ? AND aircraft_classification_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.AircraftClassificationUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.AircraftClassificationName != nil {
		classification.AircraftClassificationName = strings.TrimSpace(*req.AircraftClassificationName)
	}
	if req.AircraftClassificationParentID != nil {
		classification.AircraftClassificationParentID = req.AircraftClassificationParentID
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&classification).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "classification name already exists for this FBO")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "classification updated", classification)
}

func (ctl *FleetController) DeleteClassification(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "aircraft_classification_id invalid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("aircraft_classification_id = ? AND aircraft_classification_fbo_location_id = ?", id, fboID).
		Delete(&model.AircraftClassification{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "classification not found")
	}

	return helper.JsonDeleted(c, "classification deleted", fiber.Map{"aircraft_classification_id": id})
}

/* ===============================
   Aircraft types
=================================*/

func (ctl *FleetController) CreateAircraftType(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AircraftTypeCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	aircraftType := dto.AircraftTypeCreateDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).Create(&aircraftType).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "aircraft type name already exists for this FBO")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "aircraft type created", aircraftType)
}

func (ctl *FleetController) ListAircraftTypes(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.AircraftType{}).
		Where("aircraft_type_fbo_location_id = ?", fboID)

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("aircraft_type_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var types []model.AircraftType
	if err := q.Order("aircraft_type_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", types, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *FleetController) PatchAircraftType(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "aircraft_type_id invalid")
	}

	var aircraftType model.AircraftType
	if err := ctl.DB.WithContext(c.Context()).
		First(&aircraftType, "aircraft_type_id = ? AND aircraft_type_fbo_location_id = ?", id, fboID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "aircraft type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.AircraftTypeUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	dto.ApplyAircraftTypeUpdate(&aircraftType, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&aircraftType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "aircraft type updated", aircraftType)
}

/* ===============================
   Per-FBO aircraft type config (waiver minimum overrides)
=================================*/

// UpsertAircraftTypeConfig sets or replaces the FBO's waiver minimum for a type.
func (ctl *FleetController) UpsertAircraftTypeConfig(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FBOAircraftTypeConfigUpsertDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.FBOAircraftTypeConfigMinFuelGallonsForWaiver.Sign() < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "minimum fuel gallons may not be negative")
	}

	cfg := dto.FBOAircraftTypeConfigUpsertDTOToModel(req, fboID)
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "fbo_aircraft_type_config_fbo_location_id"},
				{Name: "fbo_aircraft_type_config_aircraft_type_id"},
			},
			// revive a soft-deleted row instead of erroring on the unique index
			DoUpdates: clause.AssignmentColumns([]string{
				"fbo_aircraft_type_config_min_fuel_gallons_for_waiver",
				"fbo_aircraft_type_config_updated_at",
				"fbo_aircraft_type_config_deleted_at",
			}),
		}).
		Create(&cfg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "aircraft type config saved", cfg)
}

func (ctl *FleetController) ListAircraftTypeConfigs(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var configs []model.FBOAircraftTypeConfig
	if err := ctl.DB.WithContext(c.Context()).
		Where("fbo_aircraft_type_config_fbo_location_id = ?", fboID).
		Find(&configs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", configs)
}

func (ctl *FleetController) DeleteAircraftTypeConfig(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fbo_aircraft_type_config_id invalid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("fbo_aircraft_type_config_id = ? AND fbo_aircraft_type_config_fbo_location_id = ?", id, fboID).
		Delete(&model.FBOAircraftTypeConfig{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "aircraft type config not found")
	}

	return helper.JsonDeleted(c, "aircraft type config deleted", fiber.Map{"fbo_aircraft_type_config_id": id})
}
