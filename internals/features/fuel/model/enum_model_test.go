package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFuelOrderDispatchChain walks the happy path through the full chain.
func TestFuelOrderDispatchChain(t *testing.T) {
	chain := []FuelOrderStatus{
		FuelOrderStatusDispatched,
		FuelOrderStatusAcknowledged,
		FuelOrderStatusEnRoute,
		FuelOrderStatusFueling,
		FuelOrderStatusCompleted,
		FuelOrderStatusReviewed,
	}
	for i := 0; i < len(chain)-1; i++ {
		require.True(t, chain[i].CanTransitionTo(chain[i+1]),
			"%s → %s must be allowed", chain[i], chain[i+1])
	}
}

// TestFuelOrderNoSkippingOrRewinding checks the chain cannot be skipped,
// reversed, or self-looped.
func TestFuelOrderNoSkippingOrRewinding(t *testing.T) {
	require.False(t, FuelOrderStatusDispatched.CanTransitionTo(FuelOrderStatusEnRoute))
	require.False(t, FuelOrderStatusDispatched.CanTransitionTo(FuelOrderStatusCompleted))
	require.False(t, FuelOrderStatusFueling.CanTransitionTo(FuelOrderStatusEnRoute))
	require.False(t, FuelOrderStatusCompleted.CanTransitionTo(FuelOrderStatusFueling))
	require.False(t, FuelOrderStatusFueling.CanTransitionTo(FuelOrderStatusFueling))
}

// TestFuelOrderCancellation checks cancellation is reachable from every
// non-terminal pre-completion state and nowhere else.
func TestFuelOrderCancellation(t *testing.T) {
	cancellable := []FuelOrderStatus{
		FuelOrderStatusDispatched,
		FuelOrderStatusAcknowledged,
		FuelOrderStatusEnRoute,
		FuelOrderStatusFueling,
	}
	for _, s := range cancellable {
		require.True(t, s.CanTransitionTo(FuelOrderStatusCancelled), string(s))
	}

	require.False(t, FuelOrderStatusCompleted.CanTransitionTo(FuelOrderStatusCancelled))
	require.False(t, FuelOrderStatusReviewed.CanTransitionTo(FuelOrderStatusCancelled))
	require.False(t, FuelOrderStatusCancelled.CanTransitionTo(FuelOrderStatusDispatched))
}

func TestFuelOrderStatusIsValid(t *testing.T) {
	require.True(t, FuelOrderStatusDispatched.IsValid())
	require.True(t, FuelOrderStatusCancelled.IsValid())
	require.False(t, FuelOrderStatus("pending").IsValid())
	require.False(t, FuelOrderStatus("").IsValid())
}
