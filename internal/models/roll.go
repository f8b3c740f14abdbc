package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hexhaus/dicehall/internal/dice"
)

// ErrRollIdParse is returned when text is not a canonical UUID.
var ErrRollIdParse = errors.New("cannot parse the roll id")

// RollId is the unique, time-ordered identifier assigned to a persisted
// roll. It wraps a version-7 UUID, so ids minted later sort after ids
// minted earlier.
type RollId struct {
	value uuid.UUID
}

// RollIdFromUUID wraps an already-minted UUID as a RollId.
func RollIdFromUUID(value uuid.UUID) RollId {
	return RollId{value: value}
}

// ParseRollId parses the canonical 36-character UUID text form. Variant
// forms accepted by the uuid package (braced, urn-prefixed, undashed) are
// rejected.
func ParseRollId(text string) (RollId, error) {
	if len(text) != 36 {
		return RollId{}, ErrRollIdParse
	}
	value, err := uuid.Parse(text)
	if err != nil {
		return RollId{}, ErrRollIdParse
	}
	return RollId{value: value}, nil
}

// UUID returns the underlying UUID value.
func (id RollId) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical UUID text form.
func (id RollId) String() string {
	return id.value.String()
}

// Roll represents a persisted dice roll
type Roll struct {
	// ID is the unique identifier for the roll
	ID RollId

	// Results holds the outcome of every die, in roll order
	Results dice.RolledDiceSet

	// CreatedAt is when the roll was made
	CreatedAt time.Time
}
