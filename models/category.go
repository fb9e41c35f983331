package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category represents a node in the shop's category tree.
// Slugs are unique per parent, so sibling categories never collide while
// distant branches may reuse a name.
type Category struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"index;not null"`
	ParentID  *uint      `gorm:"uniqueIndex:idx_categories_slug_parent"`
	Parent    *Category  `gorm:"foreignKey:ParentID"`
	Children  []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Slug      string     `gorm:"index;uniqueIndex:idx_categories_slug_parent;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (c *Category) TableName() string {
	return "categories"
}

// BeforeSave assigns a slug derived from the name when none was given.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = NewCategorySlug(c.Name)
	}
	return nil
}

// String returns the breadcrumb path for the category: the names of its
// ancestors from root to leaf, joined by " -> ". It walks whatever parent
// chain is loaded in memory; repositories preload the chain before
// handing categories out.
func (c *Category) String() string {
	path := []string{c.Name}
	for k := c.Parent; k != nil; k = k.Parent {
		path = append(path, k.Name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return strings.Join(path, " -> ")
}

// AbsoluteURL resolves the category to its listing route.
func (c *Category) AbsoluteURL() string {
	return "/categories/" + c.Slug
}
