package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog. Products belong to exactly
// one category and are removed together with it.
type Product struct {
	ID          uint            `gorm:"primaryKey;index:idx_products_id_slug"`
	CategoryID  uint            `gorm:"not null"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Title       string          `gorm:"index;not null"`
	Slug        string          `gorm:"index;index:idx_products_id_slug;not null"`
	Description string          `gorm:"type:text"`
	Brand       string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);default:99.99"`
	Image       string
	// Pointer so an explicit false survives the insert; GORM omits
	// zero-valued fields that carry a column default.
	Available *bool     `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (p *Product) TableName() string {
	return "products"
}

// String returns the product title.
func (p *Product) String() string {
	return p.Title
}

// AbsoluteURL resolves the product to its detail route.
func (p *Product) AbsoluteURL() string {
	return "/products/" + p.Slug
}

// Available narrows a query to products currently for sale. It is the
// default scope of the storefront's read view over products.
func Available(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}
