package types

import (
	"fmt"
)

// LoginRequest is shared by employee and client login.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=1"`
}

func (r LoginRequest) Validate() error {
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// LoginResponse mirrors the legacy login result: position and fio for
// employees, success flag for clients.
type LoginResponse struct {
	Position string `json:"position,omitempty"`
	Fio      string `json:"fio,omitempty"`
	Success  bool   `json:"success"`
}
