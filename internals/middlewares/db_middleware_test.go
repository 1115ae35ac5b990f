package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Routes wired through DBMiddleware read their connection back from locals.
func TestDBMiddlewareInjectsConnection(t *testing.T) {
	db := &gorm.DB{}

	app := fiber.New()
	app.Get("/with-db", DBMiddleware(db), func(c *fiber.Ctx) error {
		got, _ := c.Locals("db").(*gorm.DB)
		if got != db {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/with-db", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
