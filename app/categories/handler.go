package categories

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gostorefront/catalog/models"
)

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteCategory(slug string) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i := range categories {
		c := &categories[i]
		response[i] = CategoryResponse{
			Name: c.Name,
			Slug: c.Slug,
			Path: c.String(),
			URL:  c.AbsoluteURL(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CategoryHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	category, err := h.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
		Path: category.String(),
		URL:  category.AbsoluteURL(),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Slug     string `json:"slug"`
		ParentID *uint  `json:"parent_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if input.Name == "" {
		http.Error(w, "Missing name", http.StatusBadRequest)
		return
	}

	// Slug is optional; the model assigns one from the name on save.
	category := &models.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		ParentID: input.ParentID,
	}

	if err := h.repo.CreateCategory(category); err != nil {
		if errors.Is(err, models.ErrCategoryExists) {
			http.Error(w, "Category with this slug already exists under the same parent", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	response := CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
		Path: category.String(),
		URL:  category.AbsoluteURL(),
	}
	// The saved struct has no parent chain loaded; fetch it back so a
	// child category's breadcrumb includes its ancestors.
	if category.ParentID != nil {
		if full, err := h.repo.GetBySlug(category.Slug); err == nil {
			response.Path = full.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	if err := h.repo.DeleteCategory(slug); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete category", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
