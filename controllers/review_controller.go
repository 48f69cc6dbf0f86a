package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/dto"
	"rental-api/services"
)

// ReviewController maneja los endpoints HTTP de reseñas
type ReviewController struct {
	service services.ReviewService
}

// NewReviewController crea una nueva instancia del controlador
func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetPropertyReviews maneja GET /api/properties/:id/reviews
func (ctrl *ReviewController) GetPropertyReviews(c *gin.Context) {
	reviews, err := ctrl.service.GetByProperty(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, reviews)
}

// GetReview maneja GET /api/reviews/:id
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	review, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, review)
}

// CreateReview maneja POST /api/properties/:id/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	review, err := ctrl.service.Create(identityFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, review)
}

// UpdateReview maneja PUT /api/reviews/:id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	review, err := ctrl.service.Update(identityFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, review)
}

// DeleteReview maneja DELETE /api/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	if err := ctrl.service.Delete(identityFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}
