package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSchema_ToModel(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"id":                "prod-1",
		"name":              "Robe Satin",
		"price":             3500,
		"short_description": "Robe longue",
		"category_id":       "cat-1",
		"images":            `["/img/a.jpg","/img/b.jpg"]`,
		"created_at":        "2024-12-15T10:30:00Z",
		"categories": map[string]any{
			"id":   "cat-1",
			"name": "Robes",
		},
		"internal_column": "dropped",
	}

	m := ProductSchema.ToModel(raw)

	assert.Equal(t, "prod-1", m["id"])
	assert.Equal(t, "Robe Satin", m["name"])
	assert.Equal(t, "Robe longue", m["shortDescription"])
	assert.Equal(t, "cat-1", m["categoryId"])
	assert.Equal(t, []string{"/img/a.jpg", "/img/b.jpg"}, m["images"])
	assert.NotContains(t, m, "internal_column")

	created, ok := m["createdAt"].(time.Time)
	require.True(t, ok, "createdAt should be parsed into time.Time")
	assert.Equal(t, time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC), created.UTC())

	category, ok := m["category"].(map[string]any)
	require.True(t, ok, "joined category payload should map recursively")
	assert.Equal(t, "Robes", category["name"])
}

func TestProductSchema_ToStore_DropsUnknownAndNested(t *testing.T) {
	t.Parallel()

	fields := map[string]any{
		"name":       "Robe Satin",
		"categoryId": "cat-1",
		"category":   map[string]any{"name": "Robes"},
		"notAField":  true,
	}

	row := ProductSchema.ToStore(fields)

	assert.Equal(t, "Robe Satin", row["name"])
	assert.Equal(t, "cat-1", row["category_id"])
	assert.NotContains(t, row, "categories", "projections are read-only")
	assert.NotContains(t, row, "category")
	assert.NotContains(t, row, "notAField")
}

func TestOrderSchema_DateNormalization(t *testing.T) {
	t.Parallel()

	m := OrderSchema.ToModel(map[string]any{"date": "2024-12-15"})
	date, ok := m["date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.December, date.Month())

	row := OrderSchema.ToStore(map[string]any{"date": date})
	assert.Equal(t, "2024-12-15T00:00:00Z", row["date"])
}

func TestSchema_RoundTripStable(t *testing.T) {
	t.Parallel()

	entity := map[string]any{
		"id":               "prod-9",
		"name":             "Hijab Mousseline",
		"price":            1200,
		"stock":            4,
		"images":           []string{"/img/h1.jpg"},
		"colors":           []string{"Noir", "Beige"},
		"shortDescription": "Mousseline légère",
		"createdAt":        time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
	}

	once := ProductSchema.ToStore(entity)
	again := ProductSchema.ToStore(ProductSchema.ToModel(once))
	assert.Equal(t, once, again)
}

func TestCustomerSchema_FieldNames(t *testing.T) {
	t.Parallel()

	row := CustomerSchema.ToStore(map[string]any{
		"phoneNumber": "0550123456",
		"wilaya":      "Alger",
	})
	assert.Equal(t, "0550123456", row["phone_number"])
	assert.Equal(t, "Alger", row["wilaya"])

	m := CustomerSchema.ToModel(map[string]any{"phone_number": "0550123456"})
	assert.Equal(t, "0550123456", m["phoneNumber"])
}
