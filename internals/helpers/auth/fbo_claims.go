// file: internals/helpers/auth/fbo_claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID      = "user_id"
	LocRolesGlobal = "roles_global"
	LocFBORoles    = "fbo_roles"
)

// FBORolesEntry is one element of the fbo_roles claim: the roles a user holds
// at a single FBO location.
type FBORolesEntry struct {
	FBOLocationID uuid.UUID
	Roles         []string
}

// GetUserIDFromToken returns the authenticated user's id.
// 401 when no user is attached, 400 when the value is not a UUID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user id in token is not valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user id in token is not valid")
	}
}

// GetRolesGlobal returns the roles_global claim as a string slice, tolerating
// the shapes a JSON decoder may produce.
func GetRolesGlobal(c *fiber.Ctx) []string {
	return normalizeToStrings(c.Locals(LocRolesGlobal))
}

func HasGlobalRole(c *fiber.Ctx, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range GetRolesGlobal(c) {
		if strings.ToLower(strings.TrimSpace(r)) == role {
			return true
		}
	}
	return false
}

// GetFBORoles parses the fbo_roles claim hydrated by AuthJWT.
func GetFBORoles(c *fiber.Ctx) []FBORolesEntry {
	v := c.Locals(LocFBORoles)
	if v == nil {
		return nil
	}

	arr, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]FBORolesEntry); ok {
			return typed
		}
		return nil
	}

	out := make([]FBORolesEntry, 0, len(arr))
	for _, it := range arr {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		var entry FBORolesEntry
		if s, ok := m["fbo_location_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				entry.FBOLocationID = id
			}
		}
		entry.Roles = normalizeToStrings(m["roles"])
		if entry.FBOLocationID != uuid.Nil {
			out = append(out, entry)
		}
	}
	return out
}

func HasRoleInFBO(c *fiber.Ctx, fboID uuid.UUID, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, entry := range GetFBORoles(c) {
		if entry.FBOLocationID != fboID {
			continue
		}
		for _, r := range entry.Roles {
			if strings.ToLower(strings.TrimSpace(r)) == role {
				return true
			}
		}
	}
	return false
}

// EnsureFBOAccess passes when the user holds any of the given roles at the
// FBO, or any global role named in roles.
func EnsureFBOAccess(c *fiber.Ctx, fboID uuid.UUID, roles ...string) error {
	for _, role := range roles {
		if HasRoleInFBO(c, fboID, role) || HasGlobalRole(c, role) {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "access denied")
}

func normalizeToStrings(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}
