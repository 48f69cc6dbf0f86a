package services

import (
	"errors"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/repositories"
	"rental-api/utils"
)

// UserService define la interfaz del servicio de usuarios
type UserService interface {
	GetAll() ([]domain.User, error)
	GetByID(identity domain.Identity, id string) (*domain.User, error)
	Update(identity domain.Identity, id string, req dto.UpdateUserRequest) (*domain.User, error)
	Delete(id string) error
}

type userService struct {
	users repositories.UserRepository
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

// GetAll devuelve todos los usuarios. La ruta es solo de admin
func (s *userService) GetAll() ([]domain.User, error) {
	return s.users.GetAll()
}

// GetByID devuelve un usuario: cada uno el suyo, admin cualquiera
// Existencia antes que autorización, igual que en el resto de recursos
func (s *userService) GetByID(identity domain.Identity, id string) (*domain.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("User not found")
		}
		return nil, err
	}

	if !canAccessUser(identity, id) {
		return nil, utils.NewForbidden("Not authorized to access this route")
	}

	return user, nil
}

// Update actualiza un perfil: el propio, o cualquiera si es admin
// Password y role se descartan de los self-updates; el role solo lo
// puede cambiar un admin
func (s *userService) Update(identity domain.Identity, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.NewNotFound("User not found")
		}
		return nil, err
	}

	if !canAccessUser(identity, id) {
		return nil, utils.NewForbidden("Not authorized to update this profile")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	// Solo un admin puede cambiar roles y contraseñas ajenas
	if req.Role != "" && identity.IsAdmin() {
		user.Role = req.Role
	}
	if req.Password != "" && identity.IsAdmin() {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete elimina un usuario. La ruta es solo de admin
func (s *userService) Delete(id string) error {
	if _, err := s.users.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NewNotFound("User not found")
		}
		return err
	}
	return s.users.Delete(id)
}
