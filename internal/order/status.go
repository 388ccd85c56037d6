package order

import "errors"

type Status string

const (
	StatusPending      Status = "pending"
	StatusInProduction Status = "in_production"
	StatusReady        Status = "ready"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// statusInfo tags each status once; the triage filter and the complete
// action read these flags instead of comparing strings.
var statusInfo = map[Status]struct{ terminal bool }{
	StatusPending:      {terminal: false},
	StatusInProduction: {terminal: false},
	StatusReady:        {terminal: false},
	StatusDelivered:    {terminal: true},
	StatusCancelled:    {terminal: true},
}

// Staff may correct a status in any direction, so every state reaches every other.
var validTransitions = map[Status][]Status{
	StatusPending:      {StatusInProduction, StatusReady, StatusDelivered, StatusCancelled},
	StatusInProduction: {StatusPending, StatusReady, StatusDelivered, StatusCancelled},
	StatusReady:        {StatusPending, StatusInProduction, StatusDelivered, StatusCancelled},
	StatusDelivered:    {StatusPending, StatusInProduction, StatusReady, StatusCancelled},
	StatusCancelled:    {StatusPending, StatusInProduction, StatusReady, StatusDelivered},
}

func (s Status) Valid() bool {
	_, ok := statusInfo[s]
	return ok
}

// Terminal orders are done: no triage, no further action expected.
func (s Status) Terminal() bool {
	return statusInfo[s].terminal
}

// CanTransitionTo reports whether next is reachable from s. Staying put is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.Valid() {
		return false
	}
	if s == next || s == "" {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanMarkComplete is false only once the order is already delivered or picked up.
func (s Status) CanMarkComplete() bool {
	return s != StatusDelivered
}

// TransitionTo moves the order to next and reports whether anything changed.
func (o *Order) TransitionTo(next Status) (bool, error) {
	if !o.OrderStatus.CanTransitionTo(next) {
		return false, ErrInvalidStatusTransition
	}
	if o.OrderStatus == next {
		return false, nil
	}
	o.OrderStatus = next
	return true, nil
}

// MarkComplete sets the delivered/picked-up state regardless of the current one.
func (o *Order) MarkComplete() bool {
	changed, _ := o.TransitionTo(StatusDelivered)
	return changed
}
