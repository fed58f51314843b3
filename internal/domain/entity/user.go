package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleFarmaceutico = "farmaceutico"
	RoleAuxiliar     = "auxiliar"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Role         string // admin, farmaceutico, auxiliar
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
