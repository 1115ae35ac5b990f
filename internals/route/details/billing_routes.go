// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	FeeRoute "fbofuel_backend/internals/features/billing/fees/route"
	ReceiptRoute "fbofuel_backend/internals/features/billing/receipts/route"
	VersionRoute "fbofuel_backend/internals/features/billing/versions/route"
)

func BillingStaffRoutes(r fiber.Router, db *gorm.DB) {
	ReceiptRoute.StaffReceiptRoutes(r, db)
	FeeRoute.StaffFeeRoutes(r, db)
}

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoute.AdminFeeRoutes(r, db)
	VersionRoute.AdminVersionRoutes(r, db)
}
