package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
)

// Motivos sugeridos por tipo de movimiento (catálogo de la farmacia).
var MovementReasons = map[string][]string{
	MovementTypeEntrada: {
		"Compra nueva",
		"Devolución de cliente",
		"Ajuste de inventario",
		"Transferencia desde otra sede",
	},
	MovementTypeSalida: {
		"Venta al público",
		"Dispensación médica",
		"Producto vencido",
		"Transferencia a otra sede",
		"Ajuste de inventario",
	},
}

// Movement es un registro del ledger de inventario: una entrada o salida de
// un producto. El ledger es append-only: un movimiento aceptado nunca se
// actualiza ni se elimina; las correcciones se hacen con un movimiento
// contrario. Fecha e ID los asigna el servidor al aceptar, nunca el cliente.
type Movement struct {
	ID        string
	ProductID string
	Tipo      string // entrada | salida
	Cantidad  int64  // siempre positiva; el signo lo da el tipo
	Fecha     time.Time
	Motivo    string
	CreatedBy string // UserID
	CreatedAt time.Time
}

// Delta aporte del movimiento al stock efectivo: +Cantidad para entradas,
// -Cantidad para salidas.
func (m *Movement) Delta() int64 {
	if m.Tipo == MovementTypeSalida {
		return -m.Cantidad
	}
	return m.Cantidad
}

// ValidMovementType indica si el tipo es uno de los reconocidos.
func ValidMovementType(tipo string) bool {
	return tipo == MovementTypeEntrada || tipo == MovementTypeSalida
}
