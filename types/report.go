package types

import "time"

// WarehouseLoad is the occupancy of a point: count of live shipments.
type WarehouseLoad struct {
	PointName     string `json:"point_name"`
	OccupiedSlots int    `json:"occupied_slots"`
}

// IncomeReport aggregates completed cargo per month and type.
type IncomeReport struct {
	Period        time.Time `json:"period"`
	Income        string    `json:"income"`
	ShipmentCount int       `json:"shipment_count"`
	AvgPrice      string    `json:"avg_price"`
	CargoType     string    `json:"cargo_type"`
}
