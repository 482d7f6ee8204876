package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bistro/internal/domain"
	"bistro/internal/service"
)

func TestSimulateDelivery_Milestones(t *testing.T) {
	const total = 15 * time.Second

	tests := []struct {
		elapsed time.Duration
		status  domain.DeliveryStatus
		eta     string
	}{
		{0, domain.DeliveryPreparing, "~15 min"},
		{3 * time.Second, domain.DeliveryPreparing, "~15 min"},
		{6999 * time.Millisecond, domain.DeliveryPreparing, "~15 min"},
		{7 * time.Second, domain.DeliveryPickedUp, "~12 min"},
		{11 * time.Second, domain.DeliveryPickedUp, "~12 min"},
		{12 * time.Second, domain.DeliveryOnTheWay, "~6 min"},
		{15 * time.Second, domain.DeliveryDelivered, "Arrived!"},
		{time.Minute, domain.DeliveryDelivered, "Arrived!"},
	}
	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			snap := service.SimulateDelivery("o-1", tt.elapsed, total)
			assert.Equal(t, tt.status, snap.Status)
			assert.Equal(t, tt.eta, snap.ETA)
			assert.Equal(t, "o-1", snap.OrderID)
			assert.Equal(t, tt.status == domain.DeliveryDelivered, snap.Delivered)
		})
	}
}

func TestSimulateDelivery_CourierPath(t *testing.T) {
	start := service.SimulateDelivery("o", 0, 10*time.Second)
	assert.InDelta(t, 48.8600, start.Courier.Latitude, 1e-9)
	assert.InDelta(t, 2.3700, start.Courier.Longitude, 1e-9)
	assert.Zero(t, start.Progress)

	half := service.SimulateDelivery("o", 5*time.Second, 10*time.Second)
	assert.InDelta(t, 0.5, half.Progress, 1e-9)
	assert.InDelta(t, (48.8600+48.8534)/2, half.Courier.Latitude, 1e-9)
	assert.InDelta(t, (2.3700+2.3499)/2, half.Courier.Longitude, 1e-9)

	end := service.SimulateDelivery("o", 20*time.Second, 10*time.Second)
	assert.Equal(t, end.Client, end.Courier)
	assert.Equal(t, 1.0, end.Progress)
}

func TestSimulateDelivery_ScalesWithDuration(t *testing.T) {
	snap := service.SimulateDelivery("o", 14*time.Second, 30*time.Second)
	assert.Equal(t, domain.DeliveryPickedUp, snap.Status)

	snap = service.SimulateDelivery("o", -time.Second, 30*time.Second)
	assert.Zero(t, snap.Progress)

	snap = service.SimulateDelivery("o", 0, 0)
	assert.True(t, snap.Delivered)
}
