package client

import (
	"strings"
	"sync"

	"rental-api/domain"
	"rental-api/dto"
)

// PropertyFilters son los filtros del listado de propiedades
// Un campo ausente (cero/nil) no impone restricción; los presentes se
// combinan con AND
type PropertyFilters struct {
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *float64
	Amenities []string
	Status    domain.PropertyStatus
}

// PropertyStore mantiene la última colección de propiedades traída del
// servidor más la vista filtrada que consumen las pantallas.
// Se construye una vez por aplicación y se inyecta a los consumidores:
// nada de singletons globales
type PropertyStore struct {
	client *Client

	mu         sync.RWMutex
	properties []domain.Property
	filtered   []domain.Property
	selected   *domain.Property
}

// NewPropertyStore crea un store respaldado por el cliente de la API
func NewPropertyStore(client *Client) *PropertyStore {
	return &PropertyStore{client: client}
}

// Fetch trae todas las propiedades y reemplaza el estado local
// No hay reconciliación: lo que dice el servidor es lo que queda
func (s *PropertyStore) Fetch() error {
	properties, err := s.client.ListProperties()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = properties
	s.filtered = properties
	return nil
}

// FetchByID trae una propiedad y la deja seleccionada
func (s *PropertyStore) FetchByID(id string) (*domain.Property, error) {
	property, err := s.client.GetProperty(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = property
	return property, nil
}

// Create publica una propiedad y la agrega al estado local
func (s *PropertyStore) Create(req dto.CreatePropertyRequest) (*domain.Property, error) {
	property, err := s.client.CreateProperty(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = append(s.properties, *property)
	s.filtered = append(s.filtered, *property)
	return property, nil
}

// Update edita una propiedad y reemplaza la copia local con la del servidor
func (s *PropertyStore) Update(id string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.client.UpdateProperty(id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties[i] = *property
		}
	}
	for i := range s.filtered {
		if s.filtered[i].ID == id {
			s.filtered[i] = *property
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = property
	}
	return property, nil
}

// Delete elimina una propiedad y la saca del estado local
func (s *PropertyStore) Delete(id string) error {
	if err := s.client.DeleteProperty(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = removeProperty(s.properties, id)
	s.filtered = removeProperty(s.filtered, id)
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	return nil
}

// Filter recalcula la vista filtrada sobre la colección local
func (s *PropertyStore) Filter(filters PropertyFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]domain.Property, 0, len(s.properties))
	for _, property := range s.properties {
		if matchesFilters(property, filters) {
			filtered = append(filtered, property)
		}
	}
	s.filtered = filtered
}

// ClearFilters vuelve a mostrar la colección completa
func (s *PropertyStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = s.properties
}

// Properties devuelve la última colección traída
func (s *PropertyStore) Properties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties
}

// Filtered devuelve la vista filtrada actual
func (s *PropertyStore) Filtered() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// Selected devuelve la propiedad seleccionada, o nil
func (s *PropertyStore) Selected() *domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// matchesFilters evalúa todos los filtros presentes con AND
func matchesFilters(property domain.Property, filters PropertyFilters) bool {
	if filters.Location != "" {
		location := strings.ToLower(filters.Location)
		address := property.Address
		if !strings.Contains(strings.ToLower(address.City), location) &&
			!strings.Contains(strings.ToLower(address.State), location) &&
			!strings.Contains(strings.ToLower(address.Country), location) &&
			!strings.Contains(address.ZipCode, filters.Location) {
			return false
		}
	}

	if filters.MinPrice != nil && property.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && property.Price > *filters.MaxPrice {
		return false
	}
	if filters.Bedrooms != nil && property.Bedrooms < *filters.Bedrooms {
		return false
	}
	if filters.Bathrooms != nil && property.Bathrooms < *filters.Bathrooms {
		return false
	}

	// Todas las amenities pedidas tienen que estar
	for _, amenity := range filters.Amenities {
		if !containsString(property.Amenities, amenity) {
			return false
		}
	}

	if filters.Status != "" && property.Status != filters.Status {
		return false
	}

	return true
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func removeProperty(properties []domain.Property, id string) []domain.Property {
	result := make([]domain.Property, 0, len(properties))
	for _, property := range properties {
		if property.ID != id {
			result = append(result, property)
		}
	}
	return result
}
