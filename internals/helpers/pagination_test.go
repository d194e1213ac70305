package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		perPage int
		max     int
		want    Paging
	}{
		{
			name:    "defaults when no query",
			target:  "/items",
			perPage: 20,
			max:     100,
			want:    Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20},
		},
		{
			name:    "explicit page and per_page",
			target:  "/items?page=3&per_page=10",
			perPage: 20,
			max:     100,
			want:    Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10},
		},
		{
			name:    "legacy limit alias",
			target:  "/items?page=2&limit=5",
			perPage: 20,
			max:     100,
			want:    Paging{Page: 2, PerPage: 5, Offset: 5, Limit: 5},
		},
		{
			name:    "per_page capped at max",
			target:  "/items?per_page=500",
			perPage: 20,
			max:     100,
			want:    Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100},
		},
		{
			name:    "negative page clamps to 1",
			target:  "/items?page=-4",
			perPage: 20,
			max:     100,
			want:    Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20},
		},
		{
			name:    "garbage per_page falls back to default",
			target:  "/items?per_page=abc",
			perPage: 25,
			max:     0,
			want:    Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOn(t, tt.target, tt.perPage, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(35, p, 10)

	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, int64(35), pg.Total)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 10, pg.Count)
}

func TestBuildPaginationEmpty(t *testing.T) {
	pg := BuildPagination(0, Paging{Page: 1, PerPage: 20}, 0)

	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
