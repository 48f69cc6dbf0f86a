package dto

// CreateReviewRequest representa el request para reseñar una propiedad
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// UpdateReviewRequest representa el request para editar una reseña
type UpdateReviewRequest struct {
	Rating  *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
