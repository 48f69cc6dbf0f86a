package services

import (
	"errors"
	"time"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/publishers"
	"rental-api/repositories"
	"rental-api/utils"
)

// Clave de caché del listado público de propiedades
const propertiesCacheKey = "properties:all"

// TTL en Memcached; el nivel local usa un TTL más corto fijo
const propertiesCacheTTL = 15 * time.Minute

// PropertyService define la interfaz del servicio de propiedades
type PropertyService interface {
	GetAll() ([]domain.Property, error)
	GetByID(id string) (*domain.Property, error)
	GetByLandlord(identity domain.Identity) ([]domain.Property, error)
	Create(identity domain.Identity, req dto.CreatePropertyRequest) (*domain.Property, error)
	Update(identity domain.Identity, id string, req dto.UpdatePropertyRequest) (*domain.Property, error)
	Delete(identity domain.Identity, id string) error
}

type propertyService struct {
	properties repositories.PropertyRepository
	cache      repositories.CacheRepository
	publisher  publishers.PropertyPublisher
}

// NewPropertyService crea una nueva instancia del servicio
func NewPropertyService(
	properties repositories.PropertyRepository,
	cache repositories.CacheRepository,
	publisher publishers.PropertyPublisher,
) PropertyService {
	return &propertyService{
		properties: properties,
		cache:      cache,
		publisher:  publisher,
	}
}

// GetAll devuelve todas las propiedades con sus reseñas
// Pasa primero por el caché de dos niveles
func (s *propertyService) GetAll() ([]domain.Property, error) {
	if cached, ok := s.cache.Get(propertiesCacheKey); ok {
		return cached, nil
	}

	properties, err := s.properties.GetAll()
	if err != nil {
		return nil, err
	}

	s.cache.Set(propertiesCacheKey, properties, propertiesCacheTTL)
	return properties, nil
}

// GetByID devuelve una propiedad con sus reseñas
func (s *propertyService) GetByID(id string) (*domain.Property, error) {
	property, err := s.properties.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Property not found")
		}
		return nil, err
	}
	return property, nil
}

// GetByLandlord devuelve las propiedades del landlord autenticado
func (s *propertyService) GetByLandlord(identity domain.Identity) ([]domain.Property, error) {
	return s.properties.GetByLandlord(identity.UserID)
}

// Create publica una nueva propiedad
// El dueño sale de la identidad autenticada, nunca del body. El estado
// inicial es pending hasta que el landlord o un admin la habilite
func (s *propertyService) Create(identity domain.Identity, req dto.CreatePropertyRequest) (*domain.Property, error) {
	property := &domain.Property{
		Title:                req.Title,
		Description:          req.Description,
		Address:              req.Address,
		Price:                req.Price,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		Area:                 req.Area,
		Amenities:            req.Amenities,
		Images:               req.Images,
		AvailabilityCalendar: req.AvailabilityCalendar,
		LandlordID:           identity.UserID,
		LandlordName:         identity.Name,
		Status:               domain.PropertyStatusPending,
	}

	if err := s.properties.Create(property); err != nil {
		return nil, err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("create", property.ID)

	return property, nil
}

// Update edita una propiedad existente
// Primero existencia, después ownership: un 403 nunca delata un recurso
// que no existe
func (s *propertyService) Update(identity domain.Identity, id string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.properties.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("Property not found")
		}
		return nil, err
	}

	if !canManageProperty(identity, property) {
		return nil, utils.NewForbidden("Not authorized to update this property")
	}

	if req.Title != "" {
		property.Title = req.Title
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil {
		property.Area = *req.Area
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	if req.AvailabilityCalendar != nil {
		property.AvailabilityCalendar = req.AvailabilityCalendar
	}
	if req.Status != "" {
		property.Status = req.Status
	}

	if err := s.properties.Update(property); err != nil {
		return nil, err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("update", property.ID)

	return property, nil
}

// Delete elimina una propiedad del dueño o por un admin
func (s *propertyService) Delete(identity domain.Identity, id string) error {
	property, err := s.properties.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NewNotFound("Property not found")
		}
		return err
	}

	if !canManageProperty(identity, property) {
		return utils.NewForbidden("Not authorized to delete this property")
	}

	if err := s.properties.Delete(id); err != nil {
		return err
	}

	s.cache.Delete(propertiesCacheKey)
	s.publisher.PublishPropertyEvent("delete", id)

	return nil
}
