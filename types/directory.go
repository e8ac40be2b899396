package types

import (
	"fmt"
)

// ClientUpsertRequest creates or updates a client account keyed by phone.
type ClientUpsertRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Fio      string `json:"fio" validate:"required,min=1,max=255"`
	Address  string `json:"address" validate:"omitempty"`
	Password string `json:"password" validate:"omitempty,min=4"`
}

func (r ClientUpsertRequest) Validate() error {
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.Fio == "" {
		return fmt.Errorf("fio is required")
	}
	return nil
}

// PointUpsertRequest creates or updates a point keyed by name.
type PointUpsertRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Address string `json:"address" validate:"omitempty"`
}

func (r PointUpsertRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// EmployeeUpsertRequest creates or updates an employee. The legacy admin
// screen addresses employees by fio, so fio doubles as the lookup key on
// update/delete while the uuid stays the stable identifier.
type EmployeeUpsertRequest struct {
	Fio      string `json:"fio" validate:"required,min=1,max=255"`
	Position string `json:"position" validate:"required,oneof=director administrator operator warehouse manager"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"omitempty,min=4"`
}

func (r EmployeeUpsertRequest) Validate() error {
	if r.Fio == "" {
		return fmt.Errorf("fio is required")
	}
	if r.Position == "" {
		return fmt.Errorf("position is required")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}
