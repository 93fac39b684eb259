package entity

// Roles válidos del panel.
const (
	RoleAdministrador = "administrador"
	RoleCajero        = "cajero"
)

// User usuario autenticado del panel.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // administrador, cajero
}
