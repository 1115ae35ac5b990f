// file: internals/features/customers/controller/customer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/customers/dto"
	model "fbofuel_backend/internals/features/customers/model"
	helper "fbofuel_backend/internals/helpers"
)

type CustomerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ========== Create ==========
func (ctl *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CustomerCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.CustomerIsCAAMember && (req.CustomerCAAMemberID == nil || strings.TrimSpace(*req.CustomerCAAMemberID) == "") {
		return helper.JsonError(c, fiber.StatusBadRequest, "CAA members require a member id")
	}

	customer := dto.CustomerCreateDTOToModel(req)
	if err := ctl.DB.WithContext(c.Context()).Create(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email or CAA member id already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "customer created", customer)
}

// ========== List ==========
func (ctl *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.Customer{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("customer_name ILIKE ? OR customer_email ILIKE ?", like, like)
	}
	if caa := strings.TrimSpace(c.Query("caa_member")); caa != "" {
		q = q.Where("customer_is_caa_member = ?", caa == "true" || caa == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var customers []model.Customer
	if err := q.Order("customer_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&customers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", customers, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Get by ID ==========
func (ctl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	var customer model.Customer
	if err := ctl.DB.WithContext(c.Context()).
		First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "customer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", customer)
}

// ========== Patch ==========
func (ctl *CustomerController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	var customer model.Customer
	if err := ctl.DB.WithContext(c.Context()).
		First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "customer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.CustomerUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	dto.ApplyCustomerUpdate(&customer, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email or CAA member id already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "customer updated", customer)
}
