// file: internals/features/fuel/route/fuel_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fuelController "fbofuel_backend/internals/features/fuel/controller"
)

// StaffFuelRoutes mounts fuel order dispatch under a staff-guarded group.
func StaffFuelRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fuelController.NewFuelOrderController(db)
	orders := r.Group("/fuel-orders")
	{
		orders.Post("/", ctl.Create)
		orders.Get("/", ctl.List)
		orders.Get("/:id", ctl.GetByID)
		orders.Patch("/:id", ctl.Patch)
		orders.Patch("/:id/status", ctl.PatchStatus)
		orders.Post("/:id/complete", ctl.Complete)
	}

	r.Get("/fuel-prices", ctl.ListFuelPrices)
}

// AdminFuelRoutes: price management is admin-only.
func AdminFuelRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fuelController.NewFuelOrderController(db)
	prices := r.Group("/fuel-prices")
	{
		prices.Post("/", ctl.CreateFuelPrice)
		prices.Get("/", ctl.ListFuelPrices)
	}
}
