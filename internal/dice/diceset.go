package dice

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// diceTermPattern matches one notation term: an optional decimal count
// followed by a die token. Parsing scans for non-overlapping matches and
// ignores everything in between, so "d100 + 2d20" and "d100,2d20" read the
// same.
var diceTermPattern = regexp.MustCompile(`([0-9]+)?(d[0-9]+)`)

// DiceSet is an ordered collection of dice to be rolled together. Order is
// preserved from construction or parse and duplicates are allowed.
type DiceSet struct {
	dices []Dice
}

// NewDiceSet creates a DiceSet from the given dice. The set owns its own
// copy of the sequence.
func NewDiceSet(dices ...Dice) DiceSet {
	out := make([]Dice, len(dices))
	copy(out, dices)
	return DiceSet{dices: out}
}

// ParseDiceSet parses dice notation. Each term is an optional base-10 count
// (default 1) followed by a die token; terms expand in place, left to right.
// The scan is permissive about filler but at least one term must match.
func ParseDiceSet(notation string) (DiceSet, error) {
	matches := diceTermPattern.FindAllStringSubmatch(notation, -1)
	if len(matches) == 0 {
		return DiceSet{}, ErrDiceSetParse
	}

	var dices []Dice
	for _, match := range matches {
		count := uint64(1)
		if match[1] != "" {
			parsed, err := strconv.ParseUint(match[1], 10, 32)
			if err != nil {
				return DiceSet{}, ErrDiceSetParse
			}
			count = parsed
		}

		d, err := ParseDice(match[2])
		if err != nil {
			return DiceSet{}, err
		}

		for i := uint64(0); i < count; i++ {
			dices = append(dices, d)
		}
	}

	return DiceSet{dices: dices}, nil
}

// Dices returns the dice in the set, in order.
func (s DiceSet) Dices() []Dice {
	out := make([]Dice, len(s.dices))
	copy(out, s.dices)
	return out
}

// Len returns the number of dice in the set.
func (s DiceSet) Len() int {
	return len(s.dices)
}

// LowerBound returns the lowest possible total, every die rolling 1.
func (s DiceSet) LowerBound() (uint32, error) {
	if uint64(len(s.dices)) > math.MaxUint32 {
		return 0, ErrWayTooManyDices
	}
	return uint32(len(s.dices)), nil
}

// UpperBound returns the highest possible total, every die rolling its side
// count. Addition is checked, not wrapping.
func (s DiceSet) UpperBound() (uint32, error) {
	var total uint32
	for _, d := range s.dices {
		sum, ok := addSides(total, d.SideCount())
		if !ok {
			return 0, ErrWayTooManyDices
		}
		total = sum
	}
	return total, nil
}

// addSides adds two side counts, reporting overflow instead of wrapping.
func addSides(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// Roll rolls every die in the set independently, in order. The upper bound
// is checked first: an overflowing set fails before any entropy is drawn.
func (s DiceSet) Roll(roller Roller) (RolledDiceSet, error) {
	if _, err := s.UpperBound(); err != nil {
		return RolledDiceSet{}, err
	}

	rolled := make([]RolledDice, len(s.dices))
	for i, d := range s.dices {
		rolled[i] = d.Roll(roller)
	}

	return RolledDiceSet{rolled: rolled}, nil
}

// String renders the canonical notation: dice grouped by type, groups
// ordered by side count descending, joined with " + ". The rendering is a
// lossy normal form: it forgets insertion order and merges duplicate terms,
// but always describes the same multiset of dice.
func (s DiceSet) String() string {
	counts := make(map[Dice]uint32)
	for _, d := range s.dices {
		counts[d]++
	}

	kinds := make([]Dice, 0, len(counts))
	for d := range counts {
		kinds = append(kinds, d)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] > kinds[j] })

	terms := make([]string, 0, len(kinds))
	for _, d := range kinds {
		if counts[d] == 1 {
			terms = append(terms, d.String())
		} else {
			terms = append(terms, fmt.Sprintf("%d%s", counts[d], d))
		}
	}

	return strings.Join(terms, " + ")
}
