// file: internals/features/billing/receipts/route/receipt_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	receiptController "fbofuel_backend/internals/features/billing/receipts/controller"
)

// StaffReceiptRoutes mounts the receipt lifecycle under a staff-guarded group.
func StaffReceiptRoutes(r fiber.Router, db *gorm.DB) {
	ctl := receiptController.NewReceiptController(db)
	receipts := r.Group("/receipts")
	{
		receipts.Post("/draft", ctl.Create)
		receipts.Get("/", ctl.List)
		receipts.Get("/:id", ctl.GetByID)
		receipts.Put("/:id/draft", ctl.Patch)
		receipts.Post("/:id/calculate-fees", ctl.CalculateFees)
		receipts.Post("/:id/generate", ctl.Generate)
		receipts.Post("/:id/mark-paid", ctl.MarkPaid)
		receipts.Post("/:id/void", ctl.Void)
		receipts.Post("/:id/line-items/:line_item_id/toggle-waiver", ctl.ToggleLineItemWaiver)
	}
}
