package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductFilters struct {
	CategorySlug  string
	PriceLessThan *float64
}

// ProductsRepository reads and writes products. The zero scope sees every
// product; Available returns a view restricted to products for sale, which
// is what the storefront reads through.
type ProductsRepository struct {
	db            *gorm.DB
	availableOnly bool
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Available returns a repository whose every query is narrowed to
// available products. Same storage, no extra state.
func (r *ProductsRepository) Available() *ProductsRepository {
	return &ProductsRepository{
		db:            r.db,
		availableOnly: true,
	}
}

func (r *ProductsRepository) query() *gorm.DB {
	q := r.db.Model(&Product{})
	if r.availableOnly {
		q = q.Scopes(Available)
	}
	return q
}

func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.query().
		Preload("Category").
		Order("title").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.query().
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	// Filter
	if filters.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination, keeping the catalog's title ordering
	if err := query.Order("products.title").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductsRepository) GetBySlug(slug string) (*Product, error) {
	var product Product
	if err := r.query().
		Preload("Category").
		Where("products.slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}
