// Package authz define la tabla estática de políticas de autorización.
// Una política nombra el conjunto de roles que la satisfacen; un caller la
// cumple si su conjunto de roles intersecta con el de la política.
package authz

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Policy nombre de una política de autorización.
type Policy string

// Políticas del sistema.
const (
	RequireAdmin        Policy = "RequireAdmin"
	CanManageProducts   Policy = "CanManageProducts"
	CanDoStockMovements Policy = "CanDoStockMovements"
	CanViewReports      Policy = "CanViewReports"
)

// policies es la tabla política -> roles que la satisfacen.
// Es estado inmutable construido en tiempo de compilación, no configuración ambiente.
var policies = map[Policy][]string{
	RequireAdmin:        {entity.RoleSystemAdmin},
	CanManageProducts:   {entity.RoleSystemAdmin, entity.RoleWarehouseManager},
	CanDoStockMovements: {entity.RoleSystemAdmin, entity.RoleWarehouseManager, entity.RoleNormalUser},
	CanViewReports:      {entity.RoleSystemAdmin, entity.RoleWarehouseManager, entity.RoleAuditor},
}

// IsAuthorized indica si el conjunto de roles del caller satisface la política.
// Una política desconocida nunca se satisface.
func IsAuthorized(roles []string, policy Policy) bool {
	allowed, ok := policies[policy]
	if !ok {
		return false
	}
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}

// AssignableRoles son los roles que el registro de cuentas puede otorgar.
// SystemAdmin está excluido de forma explícita: ninguna cuenta nueva puede
// nacer administradora por esta vía.
var AssignableRoles = []string{
	entity.RoleNormalUser,
	entity.RoleWarehouseManager,
	entity.RoleAuditor,
}

// IsAssignableRole indica si un rol puede asignarse durante el registro.
func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
