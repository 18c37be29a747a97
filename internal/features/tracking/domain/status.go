package domain

import "strings"

// ClassifyEvent maps an SRO event type and status code to a ShipmentStatus.
// The second return value is false when the pair is unknown; StatusSubmitted
// is returned in that case.
func ClassifyEvent(eventType, status string) (ShipmentStatus, bool) {
	status = strings.TrimSpace(status)
	if len(status) == 1 {
		status = "0" + status
	}

	switch strings.ToUpper(strings.TrimSpace(eventType)) {
	case "PO":
		return StatusPosted, true
	case "RO", "DO", "TR", "PAR":
		return StatusSubmitted, true
	case "OEC":
		return StatusOutForDelivery, true
	case "LDI":
		return StatusWaitingPickup, true
	case "FC":
		return StatusProblem, true
	case "BDE", "BDI", "BDR":
		switch status {
		case "00", "01":
			return StatusDelivered, true
		case "02":
			return StatusAttempted, true
		default:
			return StatusProblem, true
		}
	default:
		return StatusSubmitted, false
	}
}
