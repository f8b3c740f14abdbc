// Package dice models the dice found around a tabletop role playing game:
// single dice, ordered sets of dice described by a compact notation, and the
// immutable outcomes of rolling them.
package dice

import "fmt"

// Dice is a single die type. The numeric value is the side count.
type Dice uint32

const (
	D3   Dice = 3
	D4   Dice = 4
	D6   Dice = 6
	D8   Dice = 8
	D10  Dice = 10
	D12  Dice = 12
	D20  Dice = 20
	D100 Dice = 100
)

// SideCount returns the number of sides on the die.
func (d Dice) SideCount() uint32 {
	return uint32(d)
}

// Roll rolls the die once with the given roller and returns the outcome.
func (d Dice) Roll(roller Roller) RolledDice {
	return RolledDice{
		dice:   d,
		result: roller.Roll(d.SideCount()),
	}
}

// String returns the canonical lowercase notation token for the die.
func (d Dice) String() string {
	return fmt.Sprintf("d%d", uint32(d))
}

// ParseDice parses a single notation token. Tokens are case-sensitive and
// must match one of the eight canonical lowercase forms exactly.
func ParseDice(token string) (Dice, error) {
	switch token {
	case "d3":
		return D3, nil
	case "d4":
		return D4, nil
	case "d6":
		return D6, nil
	case "d8":
		return D8, nil
	case "d10":
		return D10, nil
	case "d12":
		return D12, nil
	case "d20":
		return D20, nil
	case "d100":
		return D100, nil
	default:
		return 0, &DiceUnknownError{Token: token}
	}
}
