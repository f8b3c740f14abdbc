package roll

import (
	"github.com/hexhaus/dicehall/internal/common/clock"
	"github.com/hexhaus/dicehall/internal/common/uuid"
	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/meters"
	"github.com/hexhaus/dicehall/internal/models"
	rollRepo "github.com/hexhaus/dicehall/internal/repositories/roll"
)

// Config holds the dependencies of the roll service. All of them are
// required and injected once at construction.
type Config struct {
	// RollRepo persists and retrieves roll history
	RollRepo rollRepo.Repository

	// Meter observes roll outcomes, best effort
	Meter meters.Meter

	// Roller is the entropy source for dice rolls
	Roller dice.Roller

	// Clock stamps rolls with their creation time
	Clock clock.Clock

	// UUIDGenerator mints roll ids
	UUIDGenerator uuid.UUID
}

// RollDicesInput carries the dice set to roll. Callers holding notation
// text parse it with dice.ParseDiceSet first.
type RollDicesInput struct {
	DiceSet dice.DiceSet
}

// RollDicesOutput carries the minted id and the outcome of the roll.
type RollDicesOutput struct {
	RollID  models.RollId
	Results dice.RolledDiceSet
}

// GetDiceRollInput identifies a past roll.
type GetDiceRollInput struct {
	RollID models.RollId
}

// GetDiceRollOutput carries a past roll, under the id it was requested by.
type GetDiceRollOutput struct {
	RollID  models.RollId
	Results dice.RolledDiceSet
}
