// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "fbofuel_backend/internals/configs"
	authMiddleware "fbofuel_backend/internals/middlewares/auth"
	featuresMiddleware "fbofuel_backend/internals/middlewares/features"
	middlewares "fbofuel_backend/internals/middlewares"
	routeDetails "fbofuel_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== REGISTRY (shared across FBOs) =====================
	log.Println("[INFO] Setting up REGISTRY group...")
	registry := app.Group("/api/registry", jwt)
	routeDetails.RegistryRoutes(registry, db)

	// ===================== STAFF (per FBO) =====================
	log.Println("[INFO] Setting up STAFF group (Auth + FBO role)...")
	staff := app.Group("/api/fbo/:fbo_id",
		jwt,
		featuresMiddleware.IsFBOStaff(),
	)
	routeDetails.OperationsStaffRoutes(staff, db)
	routeDetails.BillingStaffRoutes(staff, db)

	// ===================== ADMIN (per FBO) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + FBO admin)...")
	admin := app.Group("/api/fbo/:fbo_id/admin",
		jwt,
		featuresMiddleware.IsFBOAdmin(),
		middlewares.AdminWriteRateLimiter(),
	)
	routeDetails.OperationsAdminRoutes(admin, db)
	routeDetails.BillingAdminRoutes(admin, db)
}
