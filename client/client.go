// Package client es el cliente Go de la API del marketplace
// Reemplaza los mocks de los stores: mismas operaciones y mismos
// errores, pero contra la red de verdad
package client

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/utils"
)

// envelope es el sobre de la API con el data crudo, para decodificar
// en el tipo que espera cada operación
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Token   string          `json:"token,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client habla con la API usando el sobre estándar
type Client struct {
	http  *resty.Client
	token string
}

// New crea un cliente apuntando a la URL base de la API
func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// SetToken fija la credencial bearer para los requests siguientes
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token devuelve la credencial actual (vacía si no hay sesión)
func (c *Client) Token() string {
	return c.token
}

// do ejecuta un request y decodifica el sobre. Un success:false se
// traduce al mismo APIError que generó el servidor
func (c *Client) do(method, path string, body, out interface{}) (*envelope, error) {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	if c.token != "" {
		req.SetAuthToken(c.token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, err
	}

	if !env.Success {
		message := env.Error
		if message == "" {
			message = resp.Status()
		}
		return nil, &utils.APIError{Status: resp.StatusCode(), Message: message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, err
		}
	}

	return &env, nil
}

// ---- Auth ----

// Register registra un usuario y deja la sesión iniciada
func (c *Client) Register(req dto.RegisterRequest) (*domain.User, error) {
	var user domain.User
	env, err := c.do(http.MethodPost, "/api/auth/register", req, &user)
	if err != nil {
		return nil, err
	}
	c.token = env.Token
	return &user, nil
}

// Login autentica y guarda el token para los requests siguientes
func (c *Client) Login(email, password string) (*domain.User, error) {
	var user domain.User
	env, err := c.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &user)
	if err != nil {
		return nil, err
	}
	c.token = env.Token
	return &user, nil
}

// Logout invalida la credencial local
func (c *Client) Logout() error {
	_, err := c.do(http.MethodGet, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

// Me devuelve el usuario de la sesión actual
func (c *Client) Me() (*domain.User, error) {
	var user domain.User
	if _, err := c.do(http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ---- Properties ----

// ListProperties devuelve todas las propiedades publicadas
func (c *Client) ListProperties() ([]domain.Property, error) {
	var properties []domain.Property
	if _, err := c.do(http.MethodGet, "/api/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty devuelve una propiedad con sus reseñas
func (c *Client) GetProperty(id string) (*domain.Property, error) {
	var property domain.Property
	if _, err := c.do(http.MethodGet, "/api/properties/"+id, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty publica una propiedad (requiere rol landlord)
func (c *Client) CreateProperty(req dto.CreatePropertyRequest) (*domain.Property, error) {
	var property domain.Property
	if _, err := c.do(http.MethodPost, "/api/properties", req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty edita una propiedad propia
func (c *Client) UpdateProperty(id string, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	var property domain.Property
	if _, err := c.do(http.MethodPut, "/api/properties/"+id, req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// DeleteProperty elimina una propiedad propia
func (c *Client) DeleteProperty(id string) error {
	_, err := c.do(http.MethodDelete, "/api/properties/"+id, nil, nil)
	return err
}

// ListLandlordProperties devuelve las propiedades del landlord autenticado
func (c *Client) ListLandlordProperties() ([]domain.Property, error) {
	var properties []domain.Property
	if _, err := c.do(http.MethodGet, "/api/properties/landlord/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ---- Bookings ----

// ListBookings devuelve las reservas visibles para el rol actual
func (c *Client) ListBookings() ([]domain.Booking, error) {
	var bookings []domain.Booking
	if _, err := c.do(http.MethodGet, "/api/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking devuelve una reserva accesible para el caller
func (c *Client) GetBooking(id string) (*domain.Booking, error) {
	var booking domain.Booking
	if _, err := c.do(http.MethodGet, "/api/bookings/"+id, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking reserva una propiedad disponible
func (c *Client) CreateBooking(req dto.CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if _, err := c.do(http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking actualiza una reserva
func (c *Client) UpdateBooking(id string, req dto.UpdateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if _, err := c.do(http.MethodPut, "/api/bookings/"+id, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking elimina una reserva
func (c *Client) DeleteBooking(id string) error {
	_, err := c.do(http.MethodDelete, "/api/bookings/"+id, nil, nil)
	return err
}

// ---- Reviews ----

// ListPropertyReviews devuelve las reseñas de una propiedad
func (c *Client) ListPropertyReviews(propertyID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if _, err := c.do(http.MethodGet, "/api/properties/"+propertyID+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview reseña una propiedad con reserva completada
func (c *Client) CreateReview(propertyID string, req dto.CreateReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if _, err := c.do(http.MethodPost, "/api/properties/"+propertyID+"/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview edita una reseña propia
func (c *Client) UpdateReview(id string, req dto.UpdateReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if _, err := c.do(http.MethodPut, "/api/reviews/"+id, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview elimina una reseña propia
func (c *Client) DeleteReview(id string) error {
	_, err := c.do(http.MethodDelete, "/api/reviews/"+id, nil, nil)
	return err
}

// ---- Users ----

// ListUsers devuelve todos los usuarios (solo admin)
func (c *Client) ListUsers() ([]domain.User, error) {
	var users []domain.User
	if _, err := c.do(http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser devuelve un perfil (el propio, o cualquiera si admin)
func (c *Client) GetUser(id string) (*domain.User, error) {
	var user domain.User
	if _, err := c.do(http.MethodGet, "/api/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser actualiza un perfil
func (c *Client) UpdateUser(id string, req dto.UpdateUserRequest) (*domain.User, error) {
	var user domain.User
	if _, err := c.do(http.MethodPut, "/api/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser elimina un usuario (solo admin)
func (c *Client) DeleteUser(id string) error {
	_, err := c.do(http.MethodDelete, "/api/users/"+id, nil, nil)
	return err
}
