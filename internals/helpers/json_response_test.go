package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(95, 2, 25)
	require.Equal(t, 4, p.TotalPages)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 25)
	require.Equal(t, 1, empty.TotalPages)
	require.False(t, empty.HasNext)
	require.False(t, empty.HasPrev)
}

func TestResolvePagingDefaultsAndClamp(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/things", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 25, 200)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/things?page=3&per_page=500", nil))
	require.NoError(t, err)
	require.Equal(t, 3, got.Page)
	require.Equal(t, 200, got.PerPage)
	require.Equal(t, 400, got.Offset)

	_, err = app.Test(httptest.NewRequest("GET", "/things", nil))
	require.NoError(t, err)
	require.Equal(t, 1, got.Page)
	require.Equal(t, 25, got.PerPage)
	require.Equal(t, 0, got.Offset)
}

// Field names lowercase, parametrized tags carry their param.
func TestValidationMap(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
		Age  int    `validate:"min=18"`
	}
	v := validator.New()
	err := v.Struct(form{Name: "", Age: 10})
	require.Error(t, err)

	m := ValidationMap(err)
	require.Equal(t, []string{"required"}, m["name"])
	require.Equal(t, []string{"min=18"}, m["age"])
}

func TestValidationMapNonValidatorError(t *testing.T) {
	m := ValidationMap(fiber.ErrBadRequest)
	require.Len(t, m, 1)
	require.NotEmpty(t, m["_body"])
}
