package services

import (
	"errors"

	"gorm.io/gorm"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/publishers"
	"rental-api/repositories"
	"rental-api/utils"
)

// BookingService define la interfaz del servicio de reservas
// Las reglas de consistencia reserva <-> estado de propiedad viven acá
type BookingService interface {
	Create(identity domain.Identity, req dto.CreateBookingRequest) (*domain.Booking, error)
	GetByID(identity domain.Identity, id string) (*domain.Booking, error)
	List(identity domain.Identity) ([]domain.Booking, error)
	Update(identity domain.Identity, id string, req dto.UpdateBookingRequest) (*domain.Booking, error)
	Delete(identity domain.Identity, id string) error
}

type bookingService struct {
	tx         repositories.Transactor
	bookings   repositories.BookingRepository
	properties repositories.PropertyRepository
	cache      repositories.CacheRepository
	publisher  publishers.PropertyPublisher
}

// NewBookingService crea una nueva instancia del servicio
func NewBookingService(
	tx repositories.Transactor,
	bookings repositories.BookingRepository,
	properties repositories.PropertyRepository,
	cache repositories.CacheRepository,
	publisher publishers.PropertyPublisher,
) BookingService {
	return &bookingService{
		tx:         tx,
		bookings:   bookings,
		properties: properties,
		cache:      cache,
		publisher:  publisher,
	}
}

// Create reserva una propiedad disponible
// La reserva nace en pending y la propiedad pasa a booked. Las dos
// escrituras van en una sola transacción: no puede quedar una reserva
// sin el cambio de estado ni al revés
func (s *bookingService) Create(identity domain.Identity, req dto.CreateBookingRequest) (*domain.Booking, error) {
	property, err := s.properties.GetByID(req.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Property not found")
		}
		return nil, err
	}

	if property.Status != domain.PropertyStatusAvailable {
		return nil, utils.NewBadRequest("Property is not available for booking")
	}

	booking := &domain.Booking{
		PropertyID:    req.PropertyID,
		TenantID:      identity.UserID,
		LandlordID:    property.LandlordID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalPrice:    req.TotalPrice,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.bookings.WithTx(tx).Create(booking); err != nil {
			return err
		}
		return s.properties.WithTx(tx).UpdateStatus(req.PropertyID, domain.PropertyStatusBooked)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", req.PropertyID)

	return booking, nil
}

// GetByID devuelve una reserva si el caller tiene acceso a ella
func (s *bookingService) GetByID(identity domain.Identity, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Booking not found")
		}
		return nil, err
	}

	if !canAccessBooking(identity, booking) {
		return nil, utils.NewForbidden("Not authorized to access this booking")
	}

	return booking, nil
}

// List devuelve las reservas visibles para el rol del caller:
// tenant solo las propias, landlord las de sus propiedades, admin todas
func (s *bookingService) List(identity domain.Identity) ([]domain.Booking, error) {
	switch identity.Role {
	case domain.RoleTenant:
		return s.bookings.GetByTenant(identity.UserID)
	case domain.RoleLandlord:
		properties, err := s.properties.GetByLandlord(identity.UserID)
		if err != nil {
			return nil, err
		}
		propertyIDs := make([]string, 0, len(properties))
		for _, property := range properties {
			propertyIDs = append(propertyIDs, property.ID)
		}
		return s.bookings.GetByPropertyIDs(propertyIDs)
	case domain.RoleAdmin:
		return s.bookings.GetAll()
	}
	return nil, utils.NewForbidden("Not authorized to list bookings")
}

// Update actualiza fechas, precio o estados de una reserva
// Los cambios de estado son manuales: no hay máquina automática
func (s *bookingService) Update(identity domain.Identity, id string, req dto.UpdateBookingRequest) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Booking not found")
		}
		return nil, err
	}

	if !canAccessBooking(identity, booking) {
		return nil, utils.NewForbidden("Not authorized to update this booking")
	}

	if req.StartDate != nil {
		booking.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		booking.EndDate = *req.EndDate
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}
	if req.Status != "" {
		booking.Status = req.Status
	}
	if req.PaymentStatus != "" {
		booking.PaymentStatus = req.PaymentStatus
	}

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Delete elimina una reserva y devuelve la propiedad a available
// El reset es incondicional, sin mirar si quedan otras reservas
// activas sobre la propiedad. Ambas escrituras van en una transacción
func (s *bookingService) Delete(identity domain.Identity, id string) error {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NewNotFound("Booking not found")
		}
		return err
	}

	if !canAccessBooking(identity, booking) {
		return utils.NewForbidden("Not authorized to delete this booking")
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.bookings.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.properties.WithTx(tx).UpdateStatus(booking.PropertyID, domain.PropertyStatusAvailable)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", booking.PropertyID)

	return nil
}
