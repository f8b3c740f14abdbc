package dice

// RolledDice is the immutable outcome of rolling a single die.
type RolledDice struct {
	dice   Dice
	result uint32
}

// NewRolledDice reconstructs an outcome from already-persisted data. It
// trusts the caller: the result is not checked against the die's side count.
// Only storage adapters rehydrating rolls they previously saved should use
// it; everything else obtains outcomes through Roll.
func NewRolledDice(d Dice, result uint32) RolledDice {
	return RolledDice{dice: d, result: result}
}

// Dice returns the die that was rolled.
func (r RolledDice) Dice() Dice {
	return r.dice
}

// Result returns the rolled value, between 1 and the die's side count.
func (r RolledDice) Result() uint32 {
	return r.result
}

// RolledDiceSet is the immutable outcome of rolling every die in a DiceSet,
// in the set's original order.
type RolledDiceSet struct {
	rolled []RolledDice
}

// NewRolledDiceSet builds a set out of individual outcomes. Like
// NewRolledDice it exists for storage adapters reassembling persisted rolls.
func NewRolledDiceSet(rolled []RolledDice) RolledDiceSet {
	out := make([]RolledDice, len(rolled))
	copy(out, rolled)
	return RolledDiceSet{rolled: out}
}

// Rolled returns the individual outcomes in roll order.
func (s RolledDiceSet) Rolled() []RolledDice {
	out := make([]RolledDice, len(s.rolled))
	copy(out, s.rolled)
	return out
}

// Len returns the number of dice that were rolled.
func (s RolledDiceSet) Len() int {
	return len(s.rolled)
}

// Total returns the sum of every individual result. The bound checks on
// DiceSet guarantee the sum fits in a uint32.
func (s RolledDiceSet) Total() uint32 {
	var total uint32
	for _, r := range s.rolled {
		total += r.result
	}
	return total
}
