package user

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleSeller  Role = "seller"
	RoleShipper Role = "shipper"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleShipper, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
}

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileParams struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (p UpdateProfileParams) empty() bool {
	return p.Name == nil && p.Phone == nil && p.Avatar == nil && p.Address == nil
}

// AuthResult is what register and login hand back.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
