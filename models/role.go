package models

// Role is the closed set of principal roles issued by the identity provider.
type Role string

const (
	RoleUser   Role = "USER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps an identity-provider role claim onto the closed enum,
// defaulting unknown claims to RoleUser.
func ParseRole(claim string) Role {
	switch Role(claim) {
	case RoleSeller:
		return RoleSeller
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// CanSell reports whether the role may manage stores and products.
func (r Role) CanSell() bool {
	return r == RoleSeller
}

// CanAdminister reports whether the role may manage platform-wide taxonomy.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}
