package client

import (
	"sync"

	"rental-api/domain"
	"rental-api/dto"
)

// AuthStore mantiene la sesión del lado del cliente: usuario actual y
// token. Igual que PropertyStore, se construye una vez y se inyecta
type AuthStore struct {
	client *Client

	mu   sync.RWMutex
	user *domain.User
}

// NewAuthStore crea un store de sesión respaldado por el cliente
func NewAuthStore(client *Client) *AuthStore {
	return &AuthStore{client: client}
}

// Login autentica y guarda la sesión
func (s *AuthStore) Login(email, password string) (*domain.User, error) {
	user, err := s.client.Login(email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return user, nil
}

// Register registra un usuario y deja la sesión iniciada
func (s *AuthStore) Register(req dto.RegisterRequest) (*domain.User, error) {
	user, err := s.client.Register(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return user, nil
}

// Logout cierra la sesión local; el servidor no guarda estado de sesión
func (s *AuthStore) Logout() error {
	err := s.client.Logout()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return err
}

// CurrentUser devuelve el usuario de la sesión, o nil
func (s *AuthStore) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated indica si hay una sesión activa
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.client.Token() != ""
}
