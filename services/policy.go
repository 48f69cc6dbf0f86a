package services

import "rental-api/domain"

// Reglas de autorización centralizadas
// Cada predicado decide en función de (rol del caller, ownership del
// recurso). Los servicios las evalúan siempre DESPUÉS de verificar
// existencia, para no filtrar un forbidden sobre un recurso inexistente

// canManageProperty: el landlord dueño o un admin pueden mutar la propiedad
func canManageProperty(identity domain.Identity, property *domain.Property) bool {
	return property.LandlordID == identity.UserID || identity.IsAdmin()
}

// canAccessBooking: el tenant de la reserva, el landlord de la propiedad
// o un admin pueden ver y mutar la reserva
func canAccessBooking(identity domain.Identity, booking *domain.Booking) bool {
	switch identity.Role {
	case domain.RoleTenant:
		return booking.TenantID == identity.UserID
	case domain.RoleLandlord:
		return booking.LandlordID == identity.UserID
	case domain.RoleAdmin:
		return true
	}
	return false
}

// canManageReview: el tenant autor o un admin pueden mutar la reseña
func canManageReview(identity domain.Identity, review *domain.Review) bool {
	return review.TenantID == identity.UserID || identity.IsAdmin()
}

// canAccessUser: cada usuario ve y edita solo su propio perfil, salvo admin
func canAccessUser(identity domain.Identity, userID string) bool {
	return identity.UserID == userID || identity.IsAdmin()
}
