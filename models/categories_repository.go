package models

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryExists is returned when a category with the same slug already
// exists under the same parent.
var ErrCategoryExists = errors.New("category already exists")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetAllCategories returns every category with its parent chain stitched
// in memory, so String() yields full breadcrumbs without per-row queries.
func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range categories {
		if pid := categories[i].ParentID; pid != nil {
			categories[i].Parent = byID[*pid]
		}
	}
	return categories, nil
}

// GetBySlug returns the category for a slug with its ancestors loaded up
// to the root.
func (r *CategoriesRepository) GetBySlug(slug string) (*Category, error) {
	var category Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	// Walk the parent chain; category trees are shallow.
	cur := &category
	for cur.ParentID != nil {
		var parent Category
		if err := r.db.First(&parent, *cur.ParentID).Error; err != nil {
			return nil, err
		}
		cur.Parent = &parent
		cur = cur.Parent
	}
	return &category, nil
}

// CreateCategory saves a new category. The BeforeSave hook assigns a slug
// when none was given; a (slug, parent) collision is reported as
// ErrCategoryExists.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	if err := r.db.Create(category).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrCategoryExists
		}
		return err
	}
	return nil
}

// DeleteCategory removes the category for a slug. Descendant categories
// and their products go with it through the ON DELETE CASCADE constraints.
func (r *CategoriesRepository) DeleteCategory(slug string) error {
	var category Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return r.db.Delete(&category).Error
}
