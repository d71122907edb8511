package user

import (
	"time"

	"mirastore-be/internal/access"
)

type User struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"-"`
	Role      access.Role `json:"role"`
	Address   *string     `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     access.Role
	Address  *string
}

type UpdateCustomerParams struct {
	ID    uint
	Name  string
	Email string
}
