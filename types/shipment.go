package types

import (
	"fmt"
	"time"
)

// ShipmentCreateRequest books an additional leg for an existing cargo.
type ShipmentCreateRequest struct {
	CargoTrack  string     `json:"cargo_track" validate:"required,min=1,max=64"`
	PointName   string     `json:"point_name" validate:"required,min=1,max=120"`
	Slot        string     `json:"slot" validate:"required,min=1,max=50"`
	Status      string     `json:"status" validate:"required,oneof=booked in_transit delivered"`
	EmployeeFio string     `json:"employee_fio,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (r ShipmentCreateRequest) Validate() error {
	if r.CargoTrack == "" {
		return fmt.Errorf("cargo_track is required")
	}
	if r.PointName == "" {
		return fmt.Errorf("point_name is required")
	}
	if r.Slot == "" {
		return fmt.Errorf("slot is required")
	}
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}

// ShipmentUpdateRequest is the warehouse screen's edit form.
type ShipmentUpdateRequest struct {
	CargoTrack  string     `json:"cargo_track" validate:"required,min=1,max=64"`
	PointName   string     `json:"point_name" validate:"required,min=1,max=120"`
	NewSlot     string     `json:"new_slot" validate:"required,min=1,max=50"`
	NewStatus   string     `json:"new_status" validate:"required,oneof=booked in_transit delivered"`
	EmployeeFio string     `json:"employee_fio,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (r ShipmentUpdateRequest) Validate() error {
	if r.CargoTrack == "" {
		return fmt.Errorf("cargo_track is required")
	}
	if r.PointName == "" {
		return fmt.Errorf("point_name is required")
	}
	if r.NewSlot == "" {
		return fmt.Errorf("new_slot is required")
	}
	if r.NewStatus == "" {
		return fmt.Errorf("new_status is required")
	}
	return nil
}
