package services

import (
	"errors"
	"testing"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/publishers"
	"rental-api/utils"
)

func newPropertyServiceForTest() (PropertyService, *mockPropertyRepository, *mockCacheRepository) {
	properties := newMockPropertyRepository()
	cache := newMockCacheRepository()
	service := NewPropertyService(properties, cache, publishers.NewNoopPublisher())
	return service, properties, cache
}

func createPropertyRequest() dto.CreatePropertyRequest {
	return dto.CreatePropertyRequest{
		Title:       "Depto céntrico",
		Description: "Dos ambientes con balcón",
		Address: domain.Address{
			Street:  "Av. Corrientes 1234",
			City:    "Buenos Aires",
			State:   "CABA",
			ZipCode: "C1043",
			Country: "Argentina",
		},
		Price:     1200,
		Bedrooms:  1,
		Bathrooms: 1,
		Area:      45,
		Amenities: []string{"wifi"},
		Images:    []string{"img1.jpg"},
	}
}

// Test: Crear propiedad toma el dueño de la identidad y arranca en pending
func TestCreateProperty_OwnerAndStatus(t *testing.T) {
	service, _, _ := newPropertyServiceForTest()

	landlord := domain.Identity{UserID: "landlord-1", Name: "Laura", Role: domain.RoleLandlord}
	property, err := service.Create(landlord, createPropertyRequest())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if property.LandlordID != "landlord-1" || property.LandlordName != "Laura" {
		t.Errorf("Expected landlord from identity, got %s / %s", property.LandlordID, property.LandlordName)
	}

	if property.Status != domain.PropertyStatusPending {
		t.Errorf("Expected status pending, got %s", property.Status)
	}
}

// Test: Editar una propiedad inexistente devuelve 404, no 403
func TestUpdateProperty_NotFoundBeforeForbidden(t *testing.T) {
	service, _, _ := newPropertyServiceForTest()

	other := domain.Identity{UserID: "tenant-1", Role: domain.RoleTenant}
	_, err := service.Update(other, "missing", dto.UpdatePropertyRequest{Title: "Nuevo"})

	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("Expected 404 error, got %v", err)
	}

	if err.Error() != "Property not found" {
		t.Errorf("Expected not found message, got %v", err)
	}
}

// Test: Un landlord no puede editar la propiedad de otro; un admin sí
func TestUpdateProperty_Ownership(t *testing.T) {
	service, properties, _ := newPropertyServiceForTest()
	property := seedProperty(properties, "landlord-1", domain.PropertyStatusAvailable)

	other := domain.Identity{UserID: "landlord-2", Role: domain.RoleLandlord}
	_, err := service.Update(other, property.ID, dto.UpdatePropertyRequest{Title: "Hackeado"})

	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 403 {
		t.Fatalf("Expected 403 error, got %v", err)
	}

	if err.Error() != "Not authorized to update this property" {
		t.Errorf("Expected ownership message, got %v", err)
	}

	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	updated, err := service.Update(admin, property.ID, dto.UpdatePropertyRequest{Title: "Moderado"})
	if err != nil {
		t.Fatalf("Expected admin access, got %v", err)
	}
	if updated.Title != "Moderado" {
		t.Errorf("Expected updated title, got %s", updated.Title)
	}
}

// Test: Los campos no enviados en el update no pisan nada
func TestUpdateProperty_PartialUpdate(t *testing.T) {
	service, properties, _ := newPropertyServiceForTest()
	property := seedProperty(properties, "landlord-1", domain.PropertyStatusAvailable)
	originalPrice := property.Price

	owner := domain.Identity{UserID: "landlord-1", Role: domain.RoleLandlord}
	newBedrooms := 3
	updated, err := service.Update(owner, property.ID, dto.UpdatePropertyRequest{Bedrooms: &newBedrooms})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Bedrooms != 3 {
		t.Errorf("Expected bedrooms 3, got %d", updated.Bedrooms)
	}
	if updated.Price != originalPrice {
		t.Errorf("Expected price untouched, got %v", updated.Price)
	}
	if updated.Status != domain.PropertyStatusAvailable {
		t.Errorf("Expected status untouched, got %s", updated.Status)
	}
}

// Test: Eliminar valida dueño o admin igual que el update
func TestDeleteProperty_Ownership(t *testing.T) {
	service, properties, _ := newPropertyServiceForTest()
	property := seedProperty(properties, "landlord-1", domain.PropertyStatusAvailable)

	other := domain.Identity{UserID: "landlord-2", Role: domain.RoleLandlord}
	err := service.Delete(other, property.ID)

	if err == nil || err.Error() != "Not authorized to delete this property" {
		t.Fatalf("Expected ownership message, got %v", err)
	}

	owner := domain.Identity{UserID: "landlord-1", Role: domain.RoleLandlord}
	if err := service.Delete(owner, property.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.GetByID(property.ID); err == nil {
		t.Error("Expected property gone after delete")
	}
}

// Test: El listado llena el caché y las escrituras lo invalidan
func TestGetAllProperties_CacheLifecycle(t *testing.T) {
	service, properties, cache := newPropertyServiceForTest()
	seedProperty(properties, "landlord-1", domain.PropertyStatusAvailable)

	listed, err := service.GetAll()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 property, got %d", len(listed))
	}

	if _, ok := cache.Get(propertiesCacheKey); !ok {
		t.Error("Expected cache populated after GetAll")
	}

	landlord := domain.Identity{UserID: "landlord-1", Name: "Laura", Role: domain.RoleLandlord}
	if _, err := service.Create(landlord, createPropertyRequest()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, ok := cache.Get(propertiesCacheKey); ok {
		t.Error("Expected cache invalidated after create")
	}
}

// Test: Con caché caliente el servicio no vuelve a la base
func TestGetAllProperties_ServedFromCache(t *testing.T) {
	service, properties, cache := newPropertyServiceForTest()

	cached := []domain.Property{{ID: "cached-1", Title: "Desde caché"}}
	cache.Set(propertiesCacheKey, cached, propertiesCacheTTL)
	seedProperty(properties, "landlord-1", domain.PropertyStatusAvailable)

	listed, err := service.GetAll()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(listed) != 1 || listed[0].ID != "cached-1" {
		t.Errorf("Expected cached listing, got %+v", listed)
	}
}
