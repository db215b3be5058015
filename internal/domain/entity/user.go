package entity

import "time"

// Roles válidos para User. Los proveedores comparten la tabla users.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
	RoleProveedor = "proveedor"
)

// Estados de User.
const (
	UserActivo   = "active"
	UserInactivo = "inactive"
)

// User representa un usuario del sistema: operador o proveedor.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt; vacío para proveedores sin acceso
	Nombre       string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PuedeIngresar indica si el usuario puede autenticarse.
func (u *User) PuedeIngresar() bool {
	return u.Status == UserActivo && u.PasswordHash != "" && u.Role != RoleProveedor
}
