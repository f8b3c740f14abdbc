package meters

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hexhaus/dicehall/internal/dice"
)

const (
	// rollResultHistogramName is the instrument recording individual die
	// results.
	rollResultHistogramName = "dice.roll.result"

	// diceAttributeKey labels each recorded result with its die token.
	diceAttributeKey = "dice"
)

// OTelMeter implements the Meter interface with an OpenTelemetry histogram:
// one point per die, labeled with the die's notation token.
type OTelMeter struct {
	rollHist metric.Int64Histogram
}

// NewOTel creates a meter recording on instruments from the given
// OpenTelemetry meter.
func NewOTel(meter metric.Meter) (*OTelMeter, error) {
	rollHist, err := meter.Int64Histogram(
		rollResultHistogramName,
		metric.WithDescription("Result of each individual rolled die"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create roll result histogram: %w", err)
	}

	return &OTelMeter{rollHist: rollHist}, nil
}

// ObserveRoll records every individual die result
func (m *OTelMeter) ObserveRoll(ctx context.Context, results dice.RolledDiceSet) {
	for _, rolled := range results.Rolled() {
		m.rollHist.Record(ctx, int64(rolled.Result()),
			metric.WithAttributes(attribute.String(diceAttributeKey, rolled.Dice().String())),
		)
	}
}
