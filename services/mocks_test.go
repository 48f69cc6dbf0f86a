package services

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rental-api/domain"
	"rental-api/repositories"
)

// ============================================
// MOCKS de repositorios para los tests
// ============================================

// mockTransactor ejecuta el closure directamente, sin transacción real
type mockTransactor struct{}

func (mockTransactor) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

// ---- usuarios ----

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(id string) (*domain.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) GetAll() ([]domain.User, error) {
	users := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepository) Update(user *domain.User) error {
	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) Delete(id string) error {
	delete(m.users, id)
	return nil
}

// ---- propiedades ----

type mockPropertyRepository struct {
	properties map[string]*domain.Property
}

func newMockPropertyRepository() *mockPropertyRepository {
	return &mockPropertyRepository{properties: make(map[string]*domain.Property)}
}

func (m *mockPropertyRepository) WithTx(tx *gorm.DB) repositories.PropertyRepository {
	return m
}

func (m *mockPropertyRepository) Create(property *domain.Property) error {
	if property.ID == "" {
		property.ID = fmt.Sprintf("property-%d", len(m.properties)+1)
	}
	property.CreatedAt = time.Now()
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) GetByID(id string) (*domain.Property, error) {
	property, exists := m.properties[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *property
	return &clone, nil
}

func (m *mockPropertyRepository) GetAll() ([]domain.Property, error) {
	properties := make([]domain.Property, 0, len(m.properties))
	for _, property := range m.properties {
		properties = append(properties, *property)
	}
	return properties, nil
}

func (m *mockPropertyRepository) GetByLandlord(landlordID string) ([]domain.Property, error) {
	var properties []domain.Property
	for _, property := range m.properties {
		if property.LandlordID == landlordID {
			properties = append(properties, *property)
		}
	}
	return properties, nil
}

func (m *mockPropertyRepository) Update(property *domain.Property) error {
	if _, exists := m.properties[property.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) UpdateStatus(id string, status domain.PropertyStatus) error {
	property, exists := m.properties[id]
	if !exists {
		return repositories.ErrNotFound
	}
	property.Status = status
	return nil
}

func (m *mockPropertyRepository) UpdateAverageRating(id string, averageRating float64) error {
	property, exists := m.properties[id]
	if !exists {
		return repositories.ErrNotFound
	}
	property.AverageRating = averageRating
	return nil
}

func (m *mockPropertyRepository) Delete(id string) error {
	delete(m.properties, id)
	return nil
}

// ---- reservas ----

type mockBookingRepository struct {
	bookings map[string]*domain.Booking
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[string]*domain.Booking)}
}

func (m *mockBookingRepository) WithTx(tx *gorm.DB) repositories.BookingRepository {
	return m
}

func (m *mockBookingRepository) Create(booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepository) GetByID(id string) (*domain.Booking, error) {
	booking, exists := m.bookings[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *booking
	return &clone, nil
}

func (m *mockBookingRepository) GetAll() ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0, len(m.bookings))
	for _, booking := range m.bookings {
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (m *mockBookingRepository) GetByTenant(tenantID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for _, booking := range m.bookings {
		if booking.TenantID == tenantID {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}

func (m *mockBookingRepository) GetByPropertyIDs(propertyIDs []string) ([]domain.Booking, error) {
	ids := make(map[string]bool, len(propertyIDs))
	for _, id := range propertyIDs {
		ids[id] = true
	}
	bookings := []domain.Booking{}
	for _, booking := range m.bookings {
		if ids[booking.PropertyID] {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}

func (m *mockBookingRepository) HasCompletedBooking(propertyID, tenantID string) (bool, error) {
	for _, booking := range m.bookings {
		if booking.PropertyID == propertyID &&
			booking.TenantID == tenantID &&
			booking.Status == domain.BookingStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookingRepository) Update(booking *domain.Booking) error {
	if _, exists := m.bookings[booking.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepository) Delete(id string) error {
	delete(m.bookings, id)
	return nil
}

// ---- reseñas ----

type mockReviewRepository struct {
	reviews map[string]*domain.Review
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{reviews: make(map[string]*domain.Review)}
}

func (m *mockReviewRepository) WithTx(tx *gorm.DB) repositories.ReviewRepository {
	return m
}

func (m *mockReviewRepository) Create(review *domain.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(m.reviews)+1)
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepository) GetByID(id string) (*domain.Review, error) {
	review, exists := m.reviews[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *review
	return &clone, nil
}

func (m *mockReviewRepository) GetByProperty(propertyID string) ([]domain.Review, error) {
	reviews := []domain.Review{}
	for _, review := range m.reviews {
		if review.PropertyID == propertyID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

func (m *mockReviewRepository) GetByPropertyAndTenant(propertyID, tenantID string) (*domain.Review, error) {
	for _, review := range m.reviews {
		if review.PropertyID == propertyID && review.TenantID == tenantID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockReviewRepository) Update(review *domain.Review) error {
	if _, exists := m.reviews[review.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepository) Delete(id string) error {
	delete(m.reviews, id)
	return nil
}

// ---- caché ----

// mockCacheRepository es un caché en memoria sin TTL
type mockCacheRepository struct {
	entries map[string][]domain.Property
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{entries: make(map[string][]domain.Property)}
}

func (m *mockCacheRepository) Get(key string) ([]domain.Property, bool) {
	properties, exists := m.entries[key]
	return properties, exists
}

func (m *mockCacheRepository) Set(key string, properties []domain.Property, ttl time.Duration) {
	m.entries[key] = properties
}

func (m *mockCacheRepository) Delete(key string) {
	delete(m.entries, key)
}
