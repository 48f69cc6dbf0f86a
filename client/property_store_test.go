package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-api/domain"
	"rental-api/utils"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

// testProperties arma un set chico con ubicaciones, precios y amenities
// variados para ejercitar los filtros
func testProperties() []domain.Property {
	return []domain.Property{
		{
			ID:    "prop-1",
			Title: "Depto en Palermo",
			Address: domain.Address{
				City: "Buenos Aires", State: "CABA", ZipCode: "C1414", Country: "Argentina",
			},
			Price:     1200,
			Bedrooms:  2,
			Bathrooms: 1,
			Amenities: []string{"wifi", "pileta"},
			Status:    domain.PropertyStatusAvailable,
		},
		{
			ID:    "prop-2",
			Title: "Casa en Córdoba",
			Address: domain.Address{
				City: "Córdoba", State: "Córdoba", ZipCode: "X5000", Country: "Argentina",
			},
			Price:     800,
			Bedrooms:  3,
			Bathrooms: 2,
			Amenities: []string{"wifi"},
			Status:    domain.PropertyStatusBooked,
		},
		{
			ID:    "prop-3",
			Title: "Loft en Montevideo",
			Address: domain.Address{
				City: "Montevideo", State: "Montevideo", ZipCode: "11000", Country: "Uruguay",
			},
			Price:     2000,
			Bedrooms:  1,
			Bathrooms: 1.5,
			Amenities: []string{"wifi", "pileta", "gimnasio"},
			Status:    domain.PropertyStatusAvailable,
		},
	}
}

// newTestServer sirve el listado de propiedades con el sobre estándar
// y captura el header Authorization de cada request
func newTestServer(t *testing.T, properties []domain.Property, lastAuth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastAuth != nil {
			*lastAuth = r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    properties,
		})
	}))
}

// Test: Fetch reemplaza el estado local con lo que devuelve el servidor
func TestPropertyStore_Fetch(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))

	require.NoError(t, store.Fetch())
	assert.Len(t, store.Properties(), 3)
	assert.Len(t, store.Filtered(), 3)
}

// Test: El filtro de ubicación matchea ciudad, provincia y país sin
// distinguir mayúsculas, y código postal por substring literal
func TestPropertyStore_FilterByLocation(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{Location: "córdoba"})
	filtered := store.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "prop-2", filtered[0].ID)

	// País matchea las dos argentinas
	store.Filter(PropertyFilters{Location: "ARGENTINA"})
	assert.Len(t, store.Filtered(), 2)

	// Código postal por substring
	store.Filter(PropertyFilters{Location: "1100"})
	filtered = store.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "prop-3", filtered[0].ID)
}

// Test: Los filtros de precio son inclusivos en ambos extremos
func TestPropertyStore_FilterByPrice(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{MinPrice: float64Ptr(800), MaxPrice: float64Ptr(1200)})
	filtered := store.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "prop-1", filtered[0].ID)
	assert.Equal(t, "prop-2", filtered[1].ID)
}

// Test: Bedrooms y bathrooms filtran por mínimo, no por igualdad
func TestPropertyStore_FilterByRooms(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{Bedrooms: intPtr(2)})
	assert.Len(t, store.Filtered(), 2)

	store.Filter(PropertyFilters{Bathrooms: float64Ptr(1.5)})
	filtered := store.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "prop-2", filtered[0].ID)
	assert.Equal(t, "prop-3", filtered[1].ID)
}

// Test: Las amenities pedidas tienen que estar todas
func TestPropertyStore_FilterByAmenities(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{Amenities: []string{"wifi", "pileta"}})
	filtered := store.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "prop-1", filtered[0].ID)
	assert.Equal(t, "prop-3", filtered[1].ID)

	store.Filter(PropertyFilters{Amenities: []string{"wifi", "cochera"}})
	assert.Empty(t, store.Filtered())
}

// Test: Los filtros presentes se combinan con AND
func TestPropertyStore_CombinedFilters(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{
		Status:   domain.PropertyStatusAvailable,
		MaxPrice: float64Ptr(1500),
	})
	filtered := store.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "prop-1", filtered[0].ID)
}

// Test: ClearFilters vuelve a la colección completa
func TestPropertyStore_ClearFilters(t *testing.T) {
	server := newTestServer(t, testProperties(), nil)
	defer server.Close()

	store := NewPropertyStore(New(server.URL))
	require.NoError(t, store.Fetch())

	store.Filter(PropertyFilters{Status: domain.PropertyStatusBooked})
	require.Len(t, store.Filtered(), 1)

	store.ClearFilters()
	assert.Len(t, store.Filtered(), 3)
}

// Test: El token de sesión viaja como bearer en cada request
func TestClient_SendsAuthToken(t *testing.T) {
	var lastAuth string
	server := newTestServer(t, testProperties(), &lastAuth)
	defer server.Close()

	apiClient := New(server.URL)
	apiClient.SetToken("token-de-prueba")

	_, err := apiClient.ListProperties()
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-de-prueba", lastAuth)
}

// Test: Un success:false se traduce al APIError original del servidor
func TestClient_APIErrorFromEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Property not found",
		})
	}))
	defer server.Close()

	apiClient := New(server.URL)
	_, err := apiClient.GetProperty("missing")

	var apiErr *utils.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Property not found", apiErr.Message)
}
