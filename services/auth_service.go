package services

import (
	"errors"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/repositories"
	"rental-api/utils"
)

// AuthService define la interfaz de autenticación y emisión de sesiones
type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(identity domain.Identity) (*domain.User, error)
}

type authService struct {
	users repositories.UserRepository
}

// NewAuthService crea una nueva instancia del servicio
func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Register crea un nuevo usuario y devuelve su credencial
func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	// 1. Verificar que el email no esté en uso
	existing, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewBadRequest("Email already registered")
	}

	// 2. Hashear la contraseña
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Rol por defecto: tenant. Nadie se registra como admin
	role := req.Role
	if role == "" {
		role = domain.RoleTenant
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	// 4. Emitir el token JWT
	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: *user}, nil
}

// Login valida credenciales contra el hash guardado y emite un token
// Ante email desconocido o contraseña incorrecta la respuesta es la
// misma, para no permitir enumerar cuentas
func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, utils.NewBadRequest("Please provide email and password")
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewUnauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, utils.NewUnauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: *user}, nil
}

// GetCurrentUser devuelve el usuario resuelto desde la credencial del request
func (s *authService) GetCurrentUser(identity domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
