package model

type FuelOrderStatus string

const (
	FuelOrderStatusDispatched   FuelOrderStatus = "dispatched"
	FuelOrderStatusAcknowledged FuelOrderStatus = "acknowledged"
	FuelOrderStatusEnRoute      FuelOrderStatus = "en_route"
	FuelOrderStatusFueling      FuelOrderStatus = "fueling"
	FuelOrderStatusCompleted    FuelOrderStatus = "completed"
	FuelOrderStatusReviewed     FuelOrderStatus = "reviewed"
	FuelOrderStatusCancelled    FuelOrderStatus = "cancelled"
)

// fuelOrderTransitions mirrors the dispatch chain; cancellation is allowed
// from every non-terminal state.
var fuelOrderTransitions = map[FuelOrderStatus][]FuelOrderStatus{
	FuelOrderStatusDispatched:   {FuelOrderStatusAcknowledged, FuelOrderStatusCancelled},
	FuelOrderStatusAcknowledged: {FuelOrderStatusEnRoute, FuelOrderStatusCancelled},
	FuelOrderStatusEnRoute:      {FuelOrderStatusFueling, FuelOrderStatusCancelled},
	FuelOrderStatusFueling:      {FuelOrderStatusCompleted, FuelOrderStatusCancelled},
	FuelOrderStatusCompleted:    {FuelOrderStatusReviewed},
	FuelOrderStatusReviewed:     {},
	FuelOrderStatusCancelled:    {},
}

func (s FuelOrderStatus) IsValid() bool {
	_, ok := fuelOrderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the dispatch chain allows moving from s to
// next. Equal states are not a transition.
func (s FuelOrderStatus) CanTransitionTo(next FuelOrderStatus) bool {
	for _, allowed := range fuelOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
