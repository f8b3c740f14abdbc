package dice

import (
	"errors"
	"fmt"
)

// Define errors
var (
	// ErrDiceSetParse is returned when no dice term can be found in a
	// notation string, or a count segment cannot be parsed.
	ErrDiceSetParse = errors.New("cannot parse the dice set")

	// ErrWayTooManyDices is returned when a dice set is so large that its
	// bounds no longer fit in a uint32.
	ErrWayTooManyDices = errors.New("way too many dices for any real table top game")
)

// DiceUnknownError is returned when a notation token does not name one of
// the eight known dice.
type DiceUnknownError struct {
	Token string
}

// Error implements the error interface
func (e *DiceUnknownError) Error() string {
	return fmt.Sprintf("dice %q does not exist", e.Token)
}
