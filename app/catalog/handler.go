package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gostorefront/catalog/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

type Product struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Brand    string   `json:"brand"`
	Price    float64  `json:"price"`
	URL      string   `json:"url"`
	Category Category `json:"category"`
}

type ProductProvider interface {
	GetFilteredProducts(offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetBySlug(slug string) (*models.Product, error)
}

// CatalogHandler serves the storefront's product listing and detail
// routes. It is wired with the available-only repository view, so
// products taken off sale never show up here.
type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	categorySlug := r.URL.Query().Get("category")

	var priceFilter *float64
	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := strconv.ParseFloat(priceStr, 64); err == nil {
			priceFilter = &val
		}
	}

	filters := models.ProductFilters{
		CategorySlug:  categorySlug,
		PriceLessThan: priceFilter,
	}

	res, total, err := h.repo.GetFilteredProducts(offset, limit, filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = mapProduct(&res[i])
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:    int(total),
		Products: products,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	product, err := h.repo.GetBySlug(slug)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	response := struct {
		Product
		Description string `json:"description"`
		Image       string `json:"image,omitempty"`
	}{
		Product:     mapProduct(product),
		Description: product.Description,
		Image:       product.Image,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func mapProduct(p *models.Product) Product {
	return Product{
		Title: p.Title,
		Slug:  p.Slug,
		Brand: p.Brand,
		Price: p.Price.InexactFloat64(),
		URL:   p.AbsoluteURL(),
		Category: Category{
			Name: p.Category.Name,
			Slug: p.Category.Slug,
			URL:  p.Category.AbsoluteURL(),
		},
	}
}
