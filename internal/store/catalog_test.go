package store

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuildProductListQueryConjunction(t *testing.T) {
	query, args := buildProductListQuery(ProductFilter{
		CategoryID: int64Ptr(2),
		MinPrice:   floatPtr(1000),
		Sort:       "price_asc",
		Limit:      50,
		Offset:     0,
	})

	assert.Contains(t, query, "p.is_active = TRUE")
	assert.Contains(t, query, "p.category_id = $1")
	assert.Contains(t, query, "p.price >= $2")
	assert.NotContains(t, query, "p.price <=")
	assert.NotContains(t, query, "ILIKE")
	assert.Contains(t, query, "ORDER BY p.price ASC")
	assert.Equal(t, []interface{}{int64(2), float64(1000), 50, 0}, args)
}

func TestBuildProductListQueryNoFilters(t *testing.T) {
	query, args := buildProductListQuery(ProductFilter{Limit: 20, Offset: 40})

	assert.NotContains(t, query, "category_id =")
	assert.Contains(t, query, "LIMIT $1")
	assert.Contains(t, query, "OFFSET $2")
	assert.Equal(t, []interface{}{20, 40}, args)
}

func TestBuildProductListQuerySearch(t *testing.T) {
	query, args := buildProductListQuery(ProductFilter{Search: "phone", Limit: 10})

	// case-insensitive substring match over name OR description, one shared
	// placeholder for both sides
	assert.Contains(t, query, "p.name ILIKE $1 OR p.description ILIKE $1")
	assert.Equal(t, "%phone%", args[0])
}

func TestBuildProductListQuerySortFallback(t *testing.T) {
	for _, sort := range []string{"", "bogus", "price"} {
		query, _ := buildProductListQuery(ProductFilter{Sort: sort, Limit: 10})
		assert.Contains(t, query, "ORDER BY p.reviews_count DESC", "sort=%q", sort)
	}

	query, _ := buildProductListQuery(ProductFilter{Sort: "new", Limit: 10})
	assert.Contains(t, query, "ORDER BY p.created_at DESC")
}

func TestBuildProductPatch(t *testing.T) {
	price := 999.0
	active := false
	query, args := buildProductPatch(7, models.ProductPatch{Price: &price, IsActive: &active})

	assert.Equal(t, "UPDATE products SET price = $1, is_active = $2 WHERE id = $3", query)
	assert.Equal(t, []interface{}{999.0, false, int64(7)}, args)
}

func TestBuildProductPatchEmpty(t *testing.T) {
	query, args := buildProductPatch(7, models.ProductPatch{})
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestBuildUserPatch(t *testing.T) {
	name := "New Name"
	query, args := buildUserPatch(3, models.UserPatch{Name: &name})

	assert.Equal(t, "UPDATE users SET name = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"New Name", int64(3)}, args)
}
