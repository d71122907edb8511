package access

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Identity carries the authenticated caller through every workflow call.
// It is filled once by the auth middleware and passed explicitly, never
// read from package-level state.
type Identity struct {
	UserID uint
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}
