package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepositoryAvailableView(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductsRepository(db)
	categories := NewCategoriesRepository(db)

	shoes := &Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, categories.CreateCategory(shoes))

	require.NoError(t, repo.CreateProduct(&Product{
		CategoryID: shoes.ID, Title: "Air Runner", Slug: "air-runner",
		Brand: "Acme", Price: decimal.NewFromFloat(19.99),
	}))
	require.NoError(t, repo.CreateProduct(&Product{
		CategoryID: shoes.ID, Title: "Retro Court", Slug: "retro-court",
		Brand: "Acme", Price: decimal.NewFromFloat(49.99), Available: boolPtr(false),
	}))

	all, err := repo.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, all, 2, "the base repository sees every product")
	require.NotNil(t, all[0].Available)
	assert.True(t, *all[0].Available, "availability defaults to true when unset")

	available, err := repo.Available().GetAllProducts()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Air Runner", available[0].Title)
	assert.Equal(t, "Shoes", available[0].Category.Name)

	_, err = repo.Available().GetBySlug("retro-court")
	assert.ErrorIs(t, err, ErrProductNotFound, "unavailable products are invisible through the view")

	p, err := repo.GetBySlug("retro-court")
	require.NoError(t, err)
	require.NotNil(t, p.Available)
	assert.False(t, *p.Available)
}

func TestProductsRepositoryTitleOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductsRepository(db)
	categories := NewCategoriesRepository(db)

	shoes := &Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, categories.CreateCategory(shoes))

	for _, p := range []struct{ title, slug string }{
		{"Zig Kinetica", "zig-kinetica"},
		{"Air Runner", "air-runner"},
		{"Mid Court", "mid-court"},
	} {
		require.NoError(t, repo.CreateProduct(&Product{
			CategoryID: shoes.ID, Title: p.title, Slug: p.slug,
			Brand: "Acme", Price: decimal.NewFromFloat(10),
		}))
	}

	products, total, err := repo.GetFilteredProducts(0, 10, ProductFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	titles := make([]string, len(products))
	for i, p := range products {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"Air Runner", "Mid Court", "Zig Kinetica"}, titles)
}

func TestProductsRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductsRepository(db)
	categories := NewCategoriesRepository(db)

	shoes := &Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, categories.CreateCategory(shoes))
	clothing := &Category{Name: "Clothing", Slug: "clothing"}
	require.NoError(t, categories.CreateCategory(clothing))

	require.NoError(t, repo.CreateProduct(&Product{
		CategoryID: shoes.ID, Title: "Air Runner", Slug: "air-runner",
		Brand: "Acme", Price: decimal.NewFromFloat(19.99),
	}))
	require.NoError(t, repo.CreateProduct(&Product{
		CategoryID: clothing.ID, Title: "Basic Tee", Slug: "basic-tee",
		Brand: "Plainwear", Price: decimal.NewFromFloat(24.99),
	}))
	require.NoError(t, repo.CreateProduct(&Product{
		CategoryID: clothing.ID, Title: "Down Jacket", Slug: "down-jacket",
		Brand: "Plainwear", Price: decimal.NewFromFloat(95.50),
	}))

	byCategory, total, err := repo.GetFilteredProducts(0, 10, ProductFilters{CategorySlug: "clothing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Basic Tee", byCategory[0].Title)

	priceCap := 30.0
	cheap, total, err := repo.GetFilteredProducts(0, 10, ProductFilters{PriceLessThan: &priceCap})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, cheap, 2)
	assert.Equal(t, []string{"Air Runner", "Basic Tee"}, []string{cheap[0].Title, cheap[1].Title})
}
