package models

// Role is the access level of a directory user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleGerente   Role = "gerente"
	RolePeao      Role = "peao"
	RoleVisitante Role = "visitante"
)

// Valid reports whether r belongs to the fixed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGerente, RolePeao, RoleVisitante:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
