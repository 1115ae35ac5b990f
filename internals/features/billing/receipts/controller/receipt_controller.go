// file: internals/features/billing/receipts/controller/receipt_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fbofuel_backend/internals/features/billing/receipts/dto"
	model "fbofuel_backend/internals/features/billing/receipts/model"
	service "fbofuel_backend/internals/features/billing/receipts/service"
	helper "fbofuel_backend/internals/helpers"
	helperAuth "fbofuel_backend/internals/helpers/auth"
)

type ReceiptController struct {
	DB        *gorm.DB
	Service   *service.ReceiptService
	Validator *validator.Validate
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{
		DB:        db,
		Service:   service.NewReceiptService(db),
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

func parseReceiptID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "receipt_id invalid")
	}
	return id, nil
}

// receiptInFBO rejects receipts that belong to another FBO's path scope.
func receiptInFBO(receipt *model.Receipt, fboID uuid.UUID) error {
	if receipt.ReceiptFBOLocationID != fboID {
		return fiber.NewError(fiber.StatusNotFound, "receipt not found")
	}
	return nil
}

// ========== Create draft ==========
func (ctl *ReceiptController) Create(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ReceiptCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	receipt, err := ctl.Service.CreateDraftFromFuelOrder(c.Context(), fboID, req.ReceiptFuelOrderID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "receipt draft created", receipt)
}

// ========== List ==========
func (ctl *ReceiptController) List(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.Receipt{}).
		Where("receipt_fbo_location_id = ?", fboID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		st := model.ReceiptStatus(strings.ToLower(status))
		if !st.IsValid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown receipt status")
		}
		q = q.Where("receipt_status = ?", st)
	}
	if customer := strings.TrimSpace(c.Query("customer_id")); customer != "" {
		cid, err := uuid.Parse(customer)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
		}
		q = q.Where("receipt_customer_id = ?", cid)
	}
	if tail := strings.TrimSpace(c.Query("tail_number")); tail != "" {
		q = q.Where("receipt_aircraft_tail_number_at_receipt_time = ?", strings.ToUpper(tail))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var receipts []model.Receipt
	if err := q.Order("receipt_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&receipts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", receipts, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Get by ID ==========
func (ctl *ReceiptController) GetByID(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.GetReceipt(c.Context(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := receiptInFBO(receipt, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "ok", receipt)
}

// ========== Patch draft ==========
func (ctl *ReceiptController) Patch(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ReceiptUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.UpdateDraft(c.Context(), id, req.ToDraftUpdate(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "receipt updated", receipt)
}

// ========== Calculate fees ==========
func (ctl *ReceiptController) CalculateFees(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ReceiptCalculateDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if err := ctl.Validator.Struct(&req); err != nil {
			return helper.JsonValidationError(c, helper.ValidationMap(err))
		}
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.CalculateAndUpdateDraft(c.Context(), id, dto.ToServiceAdditionalServices(req.AdditionalServices), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "fees calculated", receipt)
}

// ========== Generate ==========
func (ctl *ReceiptController) Generate(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.GenerateReceipt(c.Context(), id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "receipt generated", receipt)
}

// ========== Mark paid ==========
func (ctl *ReceiptController) MarkPaid(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.MarkAsPaid(c.Context(), id, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "receipt marked as paid", receipt)
}

// ========== Void ==========
func (ctl *ReceiptController) Void(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ReceiptVoidDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if err := ctl.Validator.Struct(&req); err != nil {
			return helper.JsonValidationError(c, helper.ValidationMap(err))
		}
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.VoidReceipt(c.Context(), id, userID, req.Reason)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "receipt voided", receipt)
}

// ========== Toggle line item waiver ==========
func (ctl *ReceiptController) ToggleLineItemWaiver(c *fiber.Ctx) error {
	fboID, err := parseFBOID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseReceiptID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lineItemID, err := uuid.Parse(strings.TrimSpace(c.Params("line_item_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "line_item_id invalid")
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctl.guardScope(c, id, fboID); err != nil {
		return helper.FromFiberError(c, err)
	}

	receipt, err := ctl.Service.ToggleLineItemWaiver(c.Context(), id, lineItemID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "line item waiver toggled", receipt)
}

// guardScope checks the receipt exists within the path FBO before mutating.
func (ctl *ReceiptController) guardScope(c *fiber.Ctx, receiptID, fboID uuid.UUID) error {
	var receipt model.Receipt
	if err := ctl.DB.WithContext(c.Context()).
		Select("receipt_id", "receipt_fbo_location_id").
		First(&receipt, "receipt_id = ?", receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "receipt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return receiptInFBO(&receipt, fboID)
}
