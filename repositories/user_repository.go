package repositories

import (
	"errors"

	"gorm.io/gorm"

	"rental-api/domain"
)

// ErrNotFound lo devuelven los repositorios cuando la entidad no existe
// Los servicios lo traducen al APIError correspondiente
var ErrNotFound = errors.New("record not found")

// UserRepository define el contrato de acceso a datos de usuarios
type UserRepository interface {
	Create(user *domain.User) error
	GetByID(id string) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	GetAll() ([]domain.User, error)
	Update(user *domain.User) error
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository crea una nueva instancia del repositorio
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserta un nuevo usuario
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// GetByID busca un usuario por su ID
func (r *userRepository) GetByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail busca un usuario por su email
// Se usa en el login y para detectar emails duplicados en el registro
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAll obtiene todos los usuarios
func (r *userRepository) GetAll() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Find(&users).Error
	return users, err
}

// Update actualiza un usuario existente
func (r *userRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

// Delete elimina un usuario por su ID
func (r *userRepository) Delete(id string) error {
	return r.db.Delete(&domain.User{}, "id = ?", id).Error
}
