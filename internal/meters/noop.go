package meters

import (
	"context"

	"github.com/hexhaus/dicehall/internal/dice"
)

// NoopMeter implements the Meter interface and does nothing. It is the
// reference adapter for tests and for deployments without telemetry.
type NoopMeter struct{}

// NewNoop creates a new no-op meter
func NewNoop() *NoopMeter {
	return &NoopMeter{}
}

// ObserveRoll discards the roll
func (m *NoopMeter) ObserveRoll(_ context.Context, _ dice.RolledDiceSet) {}
