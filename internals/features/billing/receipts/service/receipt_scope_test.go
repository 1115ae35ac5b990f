package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	fuelmodel "fbofuel_backend/internals/features/fuel/model"
)

// Drafts may only be opened against orders of the caller's own FBO
// location; a foreign order answers 404, indistinguishable from absent.
func TestOrderInFBORejectsForeignLocation(t *testing.T) {
	fboA := uuid.New()
	fboB := uuid.New()
	order := fuelmodel.FuelOrder{
		FuelOrderID:            uuid.New(),
		FuelOrderFBOLocationID: fboA,
	}

	require.NoError(t, orderInFBO(&order, fboA))

	err := orderInFBO(&order, fboB)
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	require.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
