// file: internals/features/billing/versions/route/version_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	versionController "fbofuel_backend/internals/features/billing/versions/controller"
)

// AdminVersionRoutes mounts fee schedule backup/restore under an admin group.
func AdminVersionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := versionController.NewVersionController(db)
	versions := r.Group("/fee-schedule-versions")
	{
		versions.Post("/", ctl.Create)
		versions.Get("/", ctl.List)
		versions.Post("/:id/restore", ctl.Restore)
	}
}
