package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEvent(t *testing.T) {
	tests := []struct {
		eventType string
		status    string
		want      ShipmentStatus
		known     bool
	}{
		{"PO", "01", StatusPosted, true},
		{"RO", "01", StatusSubmitted, true},
		{"DO", "01", StatusSubmitted, true},
		{"OEC", "01", StatusOutForDelivery, true},
		{"LDI", "01", StatusWaitingPickup, true},
		{"BDE", "01", StatusDelivered, true},
		{"BDE", "1", StatusDelivered, true},
		{"bdi", "00", StatusDelivered, true},
		{"BDE", "02", StatusAttempted, true},
		{"BDE", "23", StatusProblem, true},
		{"BDR", "09", StatusProblem, true},
		{"XYZ", "01", StatusSubmitted, false},
	}

	for _, tt := range tests {
		t.Run(tt.eventType+"/"+tt.status, func(t *testing.T) {
			got, known := ClassifyEvent(tt.eventType, tt.status)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestTrackingResult_LatestEvent(t *testing.T) {
	empty := &TrackingResult{}
	assert.Nil(t, empty.LatestEvent())

	r := &TrackingResult{Events: []TrackingEvent{{Description: "Entrega efetuada"}, {Description: "Objeto postado"}}}
	assert.Equal(t, "Entrega efetuada", r.LatestEvent().Description)
}
