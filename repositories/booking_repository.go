package repositories

import (
	"errors"

	"gorm.io/gorm"

	"rental-api/domain"
)

// BookingRepository define el contrato de acceso a datos de reservas
type BookingRepository interface {
	Create(booking *domain.Booking) error
	GetByID(id string) (*domain.Booking, error)
	GetAll() ([]domain.Booking, error)
	GetByTenant(tenantID string) ([]domain.Booking, error)
	GetByPropertyIDs(propertyIDs []string) ([]domain.Booking, error)
	HasCompletedBooking(propertyID, tenantID string) (bool, error)
	Update(booking *domain.Booking) error
	Delete(id string) error
	WithTx(tx *gorm.DB) BookingRepository
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository crea una nueva instancia del repositorio
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// WithTx devuelve el repositorio operando sobre la transacción dada
func (r *bookingRepository) WithTx(tx *gorm.DB) BookingRepository {
	if tx == nil {
		return r
	}
	return &bookingRepository{db: tx}
}

// Create inserta una nueva reserva
func (r *bookingRepository) Create(booking *domain.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID busca una reserva por su ID
func (r *bookingRepository) GetByID(id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetAll obtiene todas las reservas, más nuevas primero
// Solo la usa la vista de admin
func (r *bookingRepository) GetAll() ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// GetByTenant obtiene las reservas de un tenant, más nuevas primero
func (r *bookingRepository) GetByTenant(tenantID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetByPropertyIDs obtiene las reservas sobre un conjunto de propiedades
// Lo usa la visibilidad de landlord: primero se listan sus propiedades
// y después se filtran las reservas por ese conjunto de IDs
func (r *bookingRepository) GetByPropertyIDs(propertyIDs []string) ([]domain.Booking, error) {
	if len(propertyIDs) == 0 {
		return []domain.Booking{}, nil
	}
	var bookings []domain.Booking
	err := r.db.Where("property_id IN ?", propertyIDs).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// HasCompletedBooking indica si existe una reserva completada del tenant
// sobre la propiedad. Es la precondición para poder reseñar
func (r *bookingRepository) HasCompletedBooking(propertyID, tenantID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Booking{}).
		Where("property_id = ? AND tenant_id = ? AND status = ?",
			propertyID, tenantID, domain.BookingStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

// Update guarda todos los campos de una reserva existente
func (r *bookingRepository) Update(booking *domain.Booking) error {
	return r.db.Save(booking).Error
}

// Delete elimina una reserva por su ID
func (r *bookingRepository) Delete(id string) error {
	return r.db.Delete(&domain.Booking{}, "id = ?", id).Error
}
