package service

import (
	"time"

	"bistro/internal/domain"
)

var (
	courierStart   = domain.LatLng{Latitude: 48.8600, Longitude: 2.3700}
	clientLocation = domain.LatLng{Latitude: 48.8534, Longitude: 2.3499}
)

// milestones are fractions of the delivery duration, latest first.
var milestones = []struct {
	at     float64
	status domain.DeliveryStatus
	eta    string
}{
	{1, domain.DeliveryDelivered, "Arrived!"},
	{12.0 / 15, domain.DeliveryOnTheWay, "~6 min"},
	{7.0 / 15, domain.DeliveryPickedUp, "~12 min"},
	{0, domain.DeliveryPreparing, "~15 min"},
}

// SimulateDelivery returns the delivery state after elapsed out of duration.
// The courier moves in a straight line to the client; the status steps
// through the milestones.
func SimulateDelivery(orderID string, elapsed, duration time.Duration) domain.TrackingSnapshot {
	progress := 1.0
	if duration > 0 {
		progress = min(1, max(0, float64(elapsed)/float64(duration)))
	}

	snap := domain.TrackingSnapshot{
		OrderID: orderID,
		Client:  clientLocation,
		Courier: domain.LatLng{
			Latitude:  courierStart.Latitude + (clientLocation.Latitude-courierStart.Latitude)*progress,
			Longitude: courierStart.Longitude + (clientLocation.Longitude-courierStart.Longitude)*progress,
		},
		Progress:  progress,
		Delivered: progress >= 1,
	}
	for _, m := range milestones {
		if progress >= m.at {
			snap.Status = m.status
			snap.ETA = m.eta
			break
		}
	}
	return snap
}
