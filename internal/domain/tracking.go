package domain

import "time"

type DeliveryStatus string

const (
	DeliveryPreparing DeliveryStatus = "Preparing your order"
	DeliveryPickedUp  DeliveryStatus = "Order picked up"
	DeliveryOnTheWay  DeliveryStatus = "On the way"
	DeliveryDelivered DeliveryStatus = "Delivered"
)

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Order is a checked-out cart handed to the delivery simulator.
type Order struct {
	ID       string     `json:"id"`
	Lines    []CartLine `json:"lines"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}

// TrackingSnapshot is the simulated delivery state at a point in time.
type TrackingSnapshot struct {
	OrderID   string         `json:"orderId"`
	Status    DeliveryStatus `json:"status"`
	ETA       string         `json:"eta"`
	Courier   LatLng         `json:"courier"`
	Client    LatLng         `json:"client"`
	Progress  float64        `json:"progress"`
	Delivered bool           `json:"delivered"`
}
