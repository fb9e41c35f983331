package models

import (
	"path"
	"time"

	"github.com/google/uuid"
)

// productImageRoot is the directory product images live under, partitioned
// by upload date.
const productImageRoot = "products/products"

// ProductImagePath builds the storage path for a product image uploaded at
// time t. The original filename only contributes its extension; the name
// itself is a fresh uuid so concurrent uploads never clash.
func ProductImagePath(filename string, t time.Time) string {
	ext := path.Ext(filename)
	return path.Join(productImageRoot, t.Format("2006/01/02"), uuid.NewString()+ext)
}
