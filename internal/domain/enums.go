package domain

// RequestStatus represents the processing state of a magic request. Transitions
// are strictly sequential; FAILED is reachable from any non-terminal state and
// there is no retry transition.
type RequestStatus string

const (
	StatusReceived   RequestStatus = "RECEIVED"
	StatusValidated  RequestStatus = "VALIDATED"
	StatusGenerating RequestStatus = "GENERATING"
	StatusParsing    RequestStatus = "PARSING"
	StatusMapping    RequestStatus = "MAPPING"
	StatusSubmitting RequestStatus = "SUBMITTING"
	StatusDone       RequestStatus = "DONE"
	StatusFailed     RequestStatus = "FAILED"
)

// statusOrder is the single success path through the pipeline.
var statusOrder = []RequestStatus{
	StatusReceived,
	StatusValidated,
	StatusGenerating,
	StatusParsing,
	StatusMapping,
	StatusSubmitting,
	StatusDone,
}

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	if s == StatusFailed {
		return true
	}
	for _, status := range statusOrder {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the pipeline. Clients polling a
// request stop once a terminal status is observed.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// CanTransitionTo checks if a status transition is valid
func (s RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if newStatus == StatusFailed {
		return true
	}
	for i, status := range statusOrder {
		if s == status {
			return i+1 < len(statusOrder) && statusOrder[i+1] == newStatus
		}
	}
	return false
}
