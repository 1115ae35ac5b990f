// file: internals/features/fleet/route/fleet_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fleetController "fbofuel_backend/internals/features/fleet/controller"
)

// AdminFleetRoutes mounts classification/type management under an admin group.
func AdminFleetRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fleetController.NewFleetController(db)

	classifications := r.Group("/aircraft-classifications")
	{
		classifications.Post("/", ctl.CreateClassification)
		classifications.Get("/", ctl.ListClassifications)
		classifications.Patch("/:id", ctl.PatchClassification)
		classifications.Delete("/:id", ctl.DeleteClassification)
	}

	types := r.Group("/aircraft-types")
	{
		types.Post("/", ctl.CreateAircraftType)
		types.Get("/", ctl.ListAircraftTypes)
		types.Patch("/:id", ctl.PatchAircraftType)
	}

	configs := r.Group("/aircraft-type-configs")
	{
		configs.Put("/", ctl.UpsertAircraftTypeConfig)
		configs.Get("/", ctl.ListAircraftTypeConfigs)
		configs.Delete("/:id", ctl.DeleteAircraftTypeConfig)
	}
}

// StaffFleetRoutes exposes fleet lookups to CSRs.
func StaffFleetRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fleetController.NewFleetController(db)

	r.Get("/aircraft-classifications", ctl.ListClassifications)
	r.Get("/aircraft-types", ctl.ListAircraftTypes)
	r.Get("/aircraft-type-configs", ctl.ListAircraftTypeConfigs)
}

// AircraftRegistryRoutes is the registry-wide (not FBO scoped) aircraft CRUD.
func AircraftRegistryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fleetController.NewAircraftController(db)
	aircraft := r.Group("/aircraft")
	{
		aircraft.Post("/", ctl.Create)
		aircraft.Get("/", ctl.List)
		aircraft.Get("/tail/:tail_number", ctl.GetByTailNumber)
		aircraft.Patch("/:id", ctl.Patch)
	}
}

// FBOLocationRegistryRoutes: location lookups for the client's FBO switcher.
func FBOLocationRegistryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fleetController.NewFBOLocationController(db)
	locations := r.Group("/fbo-locations")
	{
		locations.Get("/", ctl.List)
		locations.Get("/:id", ctl.GetByID)
	}
}
