// file: internals/route/details/operations_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CustomerRoute "fbofuel_backend/internals/features/customers/route"
	FleetRoute "fbofuel_backend/internals/features/fleet/route"
	FuelRoute "fbofuel_backend/internals/features/fuel/route"
)

// OperationsStaffRoutes: day-to-day dispatch and lookup endpoints (FBO scoped).
func OperationsStaffRoutes(r fiber.Router, db *gorm.DB) {
	FuelRoute.StaffFuelRoutes(r, db)
	FleetRoute.StaffFleetRoutes(r, db)
}

// OperationsAdminRoutes: fleet and price configuration (FBO scoped).
func OperationsAdminRoutes(r fiber.Router, db *gorm.DB) {
	FleetRoute.AdminFleetRoutes(r, db)
	FuelRoute.AdminFuelRoutes(r, db)
}

// RegistryRoutes: customers, aircraft, and FBO locations are shared across FBOs.
func RegistryRoutes(r fiber.Router, db *gorm.DB) {
	CustomerRoute.CustomerRoutes(r, db)
	FleetRoute.AircraftRegistryRoutes(r, db)
	FleetRoute.FBOLocationRegistryRoutes(r, db)
}
