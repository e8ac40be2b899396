package cargo

// Type is the cargo size class.
type Type string

const (
	TypeSmall    Type = "small"
	TypeMedium   Type = "medium"
	TypeLarge    Type = "large"
	TypeDocument Type = "document"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSmall, TypeMedium, TypeLarge, TypeDocument:
		return true
	default:
		return false
	}
}

// Delivery is the delivery service tier.
type Delivery string

const (
	DeliveryStandard Delivery = "standard"
	DeliveryExpress  Delivery = "express"
	DeliveryCourier  Delivery = "courier"
)

func (d Delivery) String() string {
	return string(d)
}

func (d Delivery) IsValid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliveryCourier:
		return true
	default:
		return false
	}
}

// GetAllTypes returns every valid cargo type.
func GetAllTypes() []Type {
	return []Type{TypeSmall, TypeMedium, TypeLarge, TypeDocument}
}

// GetAllDeliveries returns every valid delivery tier.
func GetAllDeliveries() []Delivery {
	return []Delivery{DeliveryStandard, DeliveryExpress, DeliveryCourier}
}
