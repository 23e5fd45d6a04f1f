package permission

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleReviewer   Role = "reviewer"
	RoleTranslator Role = "translator"
	RoleGuest      Role = "guest"
)

//go:embed roles.yaml
var rolesYAML []byte

// RoleTable maps each role to its static base permissions. It is loaded once
// at startup and never mutated afterwards, which keeps resolution monotonic:
// a role upgrade or group addition can only grant, never revoke.
type RoleTable map[Role][]Permission

// LoadRoleTable parses the embedded role configuration.
func LoadRoleTable() (RoleTable, error) {
	var table RoleTable
	if err := yaml.Unmarshal(rolesYAML, &table); err != nil {
		return nil, fmt.Errorf("failed to parse role table: %w", err)
	}
	return table, nil
}

// Base returns the static permissions for a role. Unknown roles get none.
func (t RoleTable) Base(role Role) []Permission {
	return t[role]
}
