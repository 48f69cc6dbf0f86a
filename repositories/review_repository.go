package repositories

import (
	"errors"

	"gorm.io/gorm"

	"rental-api/domain"
)

// ReviewRepository define el contrato de acceso a datos de reseñas
type ReviewRepository interface {
	Create(review *domain.Review) error
	GetByID(id string) (*domain.Review, error)
	GetByProperty(propertyID string) ([]domain.Review, error)
	GetByPropertyAndTenant(propertyID, tenantID string) (*domain.Review, error)
	Update(review *domain.Review) error
	Delete(id string) error
	WithTx(tx *gorm.DB) ReviewRepository
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository crea una nueva instancia del repositorio
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// WithTx devuelve el repositorio operando sobre la transacción dada
func (r *reviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &reviewRepository{db: tx}
}

// Create inserta una nueva reseña
func (r *reviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

// GetByID busca una reseña por su ID
func (r *reviewRepository) GetByID(id string) (*domain.Review, error) {
	var review domain.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// GetByProperty obtiene todas las reseñas de una propiedad
// También alimenta el recálculo del rating promedio
func (r *reviewRepository) GetByProperty(propertyID string) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("property_id = ?", propertyID).Find(&reviews).Error
	return reviews, err
}

// GetByPropertyAndTenant busca la reseña de un tenant sobre una propiedad
// Se usa para rechazar reseñas duplicadas
func (r *reviewRepository) GetByPropertyAndTenant(propertyID, tenantID string) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Where("property_id = ? AND tenant_id = ?", propertyID, tenantID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Update guarda todos los campos de una reseña existente
func (r *reviewRepository) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

// Delete elimina una reseña por su ID
func (r *reviewRepository) Delete(id string) error {
	return r.db.Delete(&domain.Review{}, "id = ?", id).Error
}
