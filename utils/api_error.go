package utils

import "net/http"

// APIError es un error con status HTTP asociado
// Toda falla de los servicios se expresa con uno de estos cuatro tipos:
// not-found, invalid-request, unauthorized o forbidden. El responder
// central de los controllers lo traduce al sobre de error
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewNotFound crea un error 404: la entidad referenciada no existe
func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewBadRequest crea un error 400: input malformado o precondición violada
func NewBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized crea un error 401: credencial ausente o inválida
func NewUnauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbidden crea un error 403: autenticado pero sin permiso sobre el recurso
func NewForbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}
