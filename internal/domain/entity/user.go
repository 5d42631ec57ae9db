package entity

import "time"

// Roles del sistema.
const (
	RoleSystemAdmin      = "SystemAdmin"
	RoleWarehouseManager = "WarehouseManager"
	RoleNormalUser       = "NormalUser"
	RoleAuditor          = "Auditor"
)

// User representa una cuenta del sistema. Un usuario puede tener varios roles;
// el conjunto de roles viaja en el JWT y lo evalúa la tabla de políticas.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
