// Package meters defines the telemetry port for roll outcomes and its
// adapters. Observing a roll is fire-and-forget: an adapter may do nothing
// at all, and none of them can fail the request that produced the roll.
package meters

//go:generate mockgen -package=mocks -destination=mocks/mock_meter.go github.com/hexhaus/dicehall/internal/meters Meter

import (
	"context"

	"github.com/hexhaus/dicehall/internal/dice"
)

// Meter observes rolled dice sets for telemetry purposes. Implementations
// must contain their own failures; the interface gives them no way to
// propagate one.
type Meter interface {
	// ObserveRoll records a roll outcome
	ObserveRoll(ctx context.Context, results dice.RolledDiceSet)
}
