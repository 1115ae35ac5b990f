// file: internals/middlewares/features/is_fbo_admin.go
package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fbofuel_backend/internals/constants"
	helperAuth "fbofuel_backend/internals/helpers/auth"
)

func pathFBOID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("fbo_id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "fbo_id invalid")
	}
	return id, nil
}

// RequireFBORoles guards a group: the user must hold one of the roles at the
// FBO named in the path (or globally).
func RequireFBORoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fboID, err := pathFBOID(c)
		if err != nil {
			return err
		}
		if err := helperAuth.EnsureFBOAccess(c, fboID, roles...); err != nil {
			return err
		}
		return c.Next()
	}
}

// IsFBOAdmin limits a group to FBO administrators.
func IsFBOAdmin() fiber.Handler {
	return RequireFBORoles(constants.RoleAdmin)
}

// IsFBOStaff accepts any operational role at the FBO.
func IsFBOStaff() fiber.Handler {
	return RequireFBORoles(constants.RoleAdmin, constants.RoleCSR, constants.RoleFueler)
}
