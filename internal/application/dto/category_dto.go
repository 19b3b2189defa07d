package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Size      string `json:"size"`
	Packaging string `json:"packaging"`
}

// UpdateCategoryRequest body para PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name      string `json:"name"`
	Size      string `json:"size"`
	Packaging string `json:"packaging"`
}

// CategoryResponse categoría con su conteo de productos.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Size         string `json:"size"`
	Packaging    string `json:"packaging"`
	ProductCount int64  `json:"product_count"`
}
