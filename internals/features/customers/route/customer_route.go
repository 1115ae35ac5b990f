// file: internals/features/customers/route/customer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "fbofuel_backend/internals/features/customers/controller"
)

// CustomerRoutes is registry-wide customer CRUD for staff.
func CustomerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := customerController.NewCustomerController(db)
	customers := r.Group("/customers")
	{
		customers.Post("/", ctl.Create)
		customers.Get("/", ctl.List)
		customers.Get("/:id", ctl.GetByID)
		customers.Patch("/:id", ctl.Patch)
	}
}
