// file: internals/features/fleet/route/fleet_route_test.go
package route

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The location switcher depends on the registry exposing FBO lookups.
func TestFBOLocationRegistryRoutesRegistered(t *testing.T) {
	app := fiber.New()
	FBOLocationRegistryRoutes(app.Group("/api/registry"), &gorm.DB{})

	var hasList, hasGetByID bool
	for _, r := range app.GetRoutes(true) {
		if r.Method != fiber.MethodGet {
			continue
		}
		if !strings.HasPrefix(r.Path, "/api/registry/fbo-locations") {
			continue
		}
		if strings.Contains(r.Path, ":id") {
			hasGetByID = true
		} else {
			hasList = true
		}
	}

	require.True(t, hasList, "list endpoint missing")
	require.True(t, hasGetByID, "get-by-id endpoint missing")
}
