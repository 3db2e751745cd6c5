package models

// OrderStatus represents the status of a customer order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendiente"
	OrderStatusDelivered OrderStatus = "entregado"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// Order is a customer order line. Orders reserve no inventory; they only
// track what a customer asked for and whether it was delivered.
type Order struct {
	ID        string      `json:"id"`
	Customer  string      `json:"cliente"`
	Date      string      `json:"fecha"` // yyyy-mm-dd
	Status    OrderStatus `json:"estado"`
	ProductID string      `json:"productoId"`
	Quantity  int         `json:"cantidad"`
}
