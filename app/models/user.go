package models

// Role is the access role of an application user.
type Role string

const (
	RoleSales      Role = "VENTAS"
	RoleProduction Role = "PRODUCCION"
)

func (r Role) String() string {
	return string(r)
}

// User is an application user. The credential list is fixed and local; this
// is not a security boundary.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"rol"`
}
