package repositories

import (
	"errors"

	"gorm.io/gorm"

	"rental-api/domain"
)

// PropertyRepository define el contrato de acceso a datos de propiedades
// WithTx devuelve una vista del repositorio atada a una transacción,
// para las escrituras que tocan más de una entidad
type PropertyRepository interface {
	Create(property *domain.Property) error
	GetByID(id string) (*domain.Property, error)
	GetAll() ([]domain.Property, error)
	GetByLandlord(landlordID string) ([]domain.Property, error)
	Update(property *domain.Property) error
	UpdateStatus(id string, status domain.PropertyStatus) error
	UpdateAverageRating(id string, averageRating float64) error
	Delete(id string) error
	WithTx(tx *gorm.DB) PropertyRepository
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository crea una nueva instancia del repositorio
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// WithTx devuelve el repositorio operando sobre la transacción dada
func (r *propertyRepository) WithTx(tx *gorm.DB) PropertyRepository {
	if tx == nil {
		return r
	}
	return &propertyRepository{db: tx}
}

// Create inserta una nueva propiedad
func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

// GetByID busca una propiedad por su ID con sus reseñas
func (r *propertyRepository) GetByID(id string) (*domain.Property, error) {
	var property domain.Property
	err := r.db.Preload("Reviews").First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// GetAll obtiene todas las propiedades con sus reseñas, más nuevas primero
func (r *propertyRepository) GetAll() ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Preload("Reviews").Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// GetByLandlord obtiene las propiedades de un landlord, más nuevas primero
func (r *propertyRepository) GetByLandlord(landlordID string) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Preload("Reviews").
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

// Update guarda todos los campos de una propiedad existente
func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

// UpdateStatus cambia solo el estado de una propiedad
// Lo usa el ciclo de vida de las reservas
func (r *propertyRepository) UpdateStatus(id string, status domain.PropertyStatus) error {
	return r.db.Model(&domain.Property{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateAverageRating persiste el rating promedio derivado de las reseñas
func (r *propertyRepository) UpdateAverageRating(id string, averageRating float64) error {
	return r.db.Model(&domain.Property{}).
		Where("id = ?", id).
		Update("average_rating", averageRating).Error
}

// Delete elimina una propiedad por su ID
func (r *propertyRepository) Delete(id string) error {
	return r.db.Delete(&domain.Property{}, "id = ?", id).Error
}
