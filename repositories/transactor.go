package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// Transactor abstrae la ejecución de transacciones de la base de datos
// *gorm.DB lo satisface directamente. Los servicios lo usan para que las
// escrituras multi-entidad (reserva + estado de propiedad, reseña +
// rating promedio) sean atómicas
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
