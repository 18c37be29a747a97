package domain

import "time"

// ShipmentStatus is the overall state of a shipment derived from its latest event.
type ShipmentStatus string

const (
	// StatusCreated indicates labels were issued but nothing was posted yet.
	StatusCreated ShipmentStatus = "CREATED"
	// StatusPosted indicates the object was accepted at a post office.
	StatusPosted ShipmentStatus = "POSTED"
	// StatusSubmitted indicates the object is moving through the network.
	StatusSubmitted ShipmentStatus = "SUBMITTED"
	// StatusOutForDelivery indicates the object left for delivery.
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	// StatusAttempted indicates a delivery attempt failed.
	StatusAttempted ShipmentStatus = "ATTEMPTED"
	// StatusWaitingPickup indicates the object waits at a branch.
	StatusWaitingPickup ShipmentStatus = "WAITING_PICKUP"
	// StatusProblem indicates the delivery cannot proceed.
	StatusProblem ShipmentStatus = "PROBLEM"
	// StatusDelivered indicates the object was delivered.
	StatusDelivered ShipmentStatus = "DELIVERED"
)

// EventTimeLayout is the layout of an SRO event date and hour joined by a space.
const EventTimeLayout = "02/01/2006 15:04"

// Brasilia is the zone SRO event times are reported in.
var Brasilia = time.FixedZone("BRT", -3*60*60)

// Destination is where an event forwarded the object to.
type Destination struct {
	Location     string `json:"location"`
	Code         string `json:"code"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	State        string `json:"state"`
}

// TrackingEvent is one entry of the object history.
type TrackingEvent struct {
	// Type is the event family, e.g. "BDE".
	Type string `json:"type"`
	// Status is the code within the family, e.g. "01".
	Status string `json:"status"`
	// Date is dd/mm/yyyy as reported.
	Date string `json:"date"`
	// Hour is hh:mm as reported.
	Hour string `json:"hour"`
	// OccurredAt is Date and Hour parsed in Brasilia time; zero when unparseable.
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	// Code is the zip code of the unit that recorded the event.
	Code        string       `json:"code"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Destination *Destination `json:"destination,omitempty"`
}

// TrackingResult is the answer of one lookup. When Found is false only
// TrackingCode and ErrorMessage are set.
type TrackingResult struct {
	Found        bool   `json:"found"`
	TrackingCode string `json:"tracking_code"`
	// Abbreviation is the two letter prefix of the code (sigla).
	Abbreviation string          `json:"abbreviation,omitempty"`
	Name         string          `json:"name,omitempty"`
	Category     string          `json:"category,omitempty"`
	Events       []TrackingEvent `json:"events,omitempty"`
	// MostRecentStatus is the description of the first, most recent, event.
	MostRecentStatus string `json:"most_recent_status,omitempty"`
	// Status is derived from the most recent event.
	Status       ShipmentStatus `json:"status,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// LatestEvent returns the most recent event, or nil when there is none.
func (r *TrackingResult) LatestEvent() *TrackingEvent {
	if len(r.Events) == 0 {
		return nil
	}
	return &r.Events[0]
}
