// file: internals/features/billing/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "fbofuel_backend/internals/features/billing/fees/controller"
)

// AdminFeeRoutes mounts fee schedule management under an admin-guarded group.
func AdminFeeRoutes(r fiber.Router, db *gorm.DB) {
	ruleCtl := feeController.NewFeeRuleController(db)
	rules := r.Group("/fee-rules")
	{
		rules.Post("/", ruleCtl.Create)
		rules.Get("/", ruleCtl.List)
		rules.Get("/:id", ruleCtl.GetByID)
		rules.Patch("/:id", ruleCtl.Patch)
		rules.Delete("/:id", ruleCtl.Delete)
	}

	ovCtl := feeController.NewFeeOverrideController(db)
	overrides := r.Group("/fee-rule-overrides")
	{
		overrides.Post("/", ovCtl.CreateOverride)
		overrides.Patch("/:id", ovCtl.PatchOverride)
		overrides.Delete("/:id", ovCtl.DeleteOverride)
	}

	tiers := r.Group("/waiver-tiers")
	{
		tiers.Post("/", ovCtl.CreateWaiverTier)
		tiers.Get("/", ovCtl.ListWaiverTiers)
		tiers.Patch("/:id", ovCtl.PatchWaiverTier)
		tiers.Delete("/:id", ovCtl.DeleteWaiverTier)
	}
}

// StaffFeeRoutes exposes read-only fee schedule access to CSRs.
func StaffFeeRoutes(r fiber.Router, db *gorm.DB) {
	ruleCtl := feeController.NewFeeRuleController(db)
	rules := r.Group("/fee-rules")
	{
		rules.Get("/", ruleCtl.List)
		rules.Get("/:id", ruleCtl.GetByID)
	}
}
