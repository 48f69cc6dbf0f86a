package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/publishers"
	"rental-api/repositories"
	"rental-api/utils"
)

// ReviewService define la interfaz del servicio de reseñas
// Además del CRUD mantiene el rating promedio derivado de la propiedad
type ReviewService interface {
	GetByProperty(propertyID string) ([]domain.Review, error)
	GetByID(id string) (*domain.Review, error)
	Create(identity domain.Identity, propertyID string, req dto.CreateReviewRequest) (*domain.Review, error)
	Update(identity domain.Identity, id string, req dto.UpdateReviewRequest) (*domain.Review, error)
	Delete(identity domain.Identity, id string) error
}

type reviewService struct {
	tx         repositories.Transactor
	reviews    repositories.ReviewRepository
	bookings   repositories.BookingRepository
	properties repositories.PropertyRepository
	cache      repositories.CacheRepository
	publisher  publishers.PropertyPublisher
}

// NewReviewService crea una nueva instancia del servicio
func NewReviewService(
	tx repositories.Transactor,
	reviews repositories.ReviewRepository,
	bookings repositories.BookingRepository,
	properties repositories.PropertyRepository,
	cache repositories.CacheRepository,
	publisher publishers.PropertyPublisher,
) ReviewService {
	return &reviewService{
		tx:         tx,
		reviews:    reviews,
		bookings:   bookings,
		properties: properties,
		cache:      cache,
		publisher:  publisher,
	}
}

// GetByProperty devuelve todas las reseñas de una propiedad
func (s *reviewService) GetByProperty(propertyID string) ([]domain.Review, error) {
	return s.reviews.GetByProperty(propertyID)
}

// GetByID devuelve una reseña
func (s *reviewService) GetByID(id string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Review not found")
		}
		return nil, err
	}
	return review, nil
}

// Create crea una reseña de un tenant sobre una propiedad
// Precondiciones: la propiedad existe, el tenant tiene una reserva
// completada sobre ella, y todavía no la reseñó. La escritura y el
// recálculo del promedio van en la misma transacción
func (s *reviewService) Create(identity domain.Identity, propertyID string, req dto.CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.properties.GetByID(propertyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Property not found")
		}
		return nil, err
	}

	completed, err := s.bookings.HasCompletedBooking(propertyID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, utils.NewBadRequest("You must complete a booking before reviewing")
	}

	existing, err := s.reviews.GetByPropertyAndTenant(propertyID, identity.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewBadRequest("You have already reviewed this property")
	}

	review := &domain.Review{
		PropertyID: propertyID,
		TenantID:   identity.UserID,
		TenantName: identity.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.reviews.WithTx(tx).Create(review); err != nil {
			return err
		}
		return s.recalculateAverageRating(tx, propertyID)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", propertyID)

	return review, nil
}

// Update edita una reseña del autor o por un admin y recalcula el promedio
func (s *reviewService) Update(identity domain.Identity, id string, req dto.UpdateReviewRequest) (*domain.Review, error) {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Review not found")
		}
		return nil, err
	}

	if !canManageReview(identity, review) {
		return nil, utils.NewForbidden("Not authorized to update this review")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.reviews.WithTx(tx).Update(review); err != nil {
			return err
		}
		return s.recalculateAverageRating(tx, review.PropertyID)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", review.PropertyID)

	return review, nil
}

// Delete elimina una reseña y recalcula el promedio de la propiedad
func (s *reviewService) Delete(identity domain.Identity, id string) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NewNotFound("Review not found")
		}
		return err
	}

	if !canManageReview(identity, review) {
		return utils.NewForbidden("Not authorized to delete this review")
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.reviews.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.recalculateAverageRating(tx, review.PropertyID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", review.PropertyID)

	return nil
}

// recalculateAverageRating re-lee el set completo de reseñas dentro de
// la transacción que disparó el cambio y persiste la media redondeada
// a un decimal; 0 cuando no queda ninguna reseña
func (s *reviewService) recalculateAverageRating(tx *gorm.DB, propertyID string) error {
	reviews, err := s.reviews.WithTx(tx).GetByProperty(propertyID)
	if err != nil {
		return err
	}

	average := 0.0
	if len(reviews) > 0 {
		total := 0
		for _, review := range reviews {
			total += review.Rating
		}
		average = math.Round(float64(total)/float64(len(reviews))*10) / 10
	}

	return s.properties.WithTx(tx).UpdateAverageRating(propertyID, average)
}
