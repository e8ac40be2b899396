package types

import (
	"fmt"
)

// PriceQuoteRequest is the operator's "calculate price" form.
type PriceQuoteRequest struct {
	Mass      *float64 `json:"mass,omitempty"`
	Type      string   `json:"type" validate:"required,oneof=small medium large document"`
	Delivery  string   `json:"delivery" validate:"required,oneof=standard express courier"`
	Packaging bool     `json:"packaging"`
	Insurance bool     `json:"insurance"`
}

func (r PriceQuoteRequest) Validate() error {
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	if r.Delivery == "" {
		return fmt.Errorf("delivery is required")
	}
	return nil
}

// CargoCreateRequest creates a cargo together with its origin shipment.
// Price is optional; when omitted it is computed server-side.
type CargoCreateRequest struct {
	Track         string   `json:"track" validate:"required,min=1,max=64"`
	Type          string   `json:"type" validate:"required,oneof=small medium large document"`
	Delivery      string   `json:"delivery" validate:"required,oneof=standard express courier"`
	SenderPhone   string   `json:"sender_phone" validate:"omitempty,phone"`
	ReceiverPhone string   `json:"receiver_phone" validate:"omitempty,phone"`
	Price         *string  `json:"price,omitempty"`
	Mass          *float64 `json:"mass,omitempty"`
	DeclaredValue *string  `json:"declared_value,omitempty"`
	Packaging     bool     `json:"packaging"`
	Insurance     bool     `json:"insurance"`

	// Origin leg; required for the operator flow, ignored by the admin
	// cargo-only endpoint.
	PointName string `json:"point_name,omitempty"`
	Slot      string `json:"slot,omitempty"`
}

func (r CargoCreateRequest) Validate() error {
	if r.Track == "" {
		return fmt.Errorf("track is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	if r.Delivery == "" {
		return fmt.Errorf("delivery is required")
	}
	return nil
}

// CargoUpdateRequest is the administrative overwrite, price included.
type CargoUpdateRequest struct {
	Type          string   `json:"type" validate:"required,oneof=small medium large document"`
	Delivery      string   `json:"delivery" validate:"required,oneof=standard express courier"`
	Price         string   `json:"price" validate:"required"`
	Mass          *float64 `json:"mass,omitempty"`
	DeclaredValue *string  `json:"declared_value,omitempty"`
	Packaging     bool     `json:"packaging"`
	Insurance     bool     `json:"insurance"`
}

func (r CargoUpdateRequest) Validate() error {
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	if r.Delivery == "" {
		return fmt.Errorf("delivery is required")
	}
	if r.Price == "" {
		return fmt.Errorf("price is required")
	}
	return nil
}
