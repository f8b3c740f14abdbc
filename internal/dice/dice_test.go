package dice

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDice = []struct {
	dice  Dice
	sides uint32
	token string
}{
	{D3, 3, "d3"},
	{D4, 4, "d4"},
	{D6, 6, "d6"},
	{D8, 8, "d8"},
	{D10, 10, "d10"},
	{D12, 12, "d12"},
	{D20, 20, "d20"},
	{D100, 100, "d100"},
}

func TestSideCount(t *testing.T) {
	for _, tc := range allDice {
		assert.Equal(t, tc.sides, tc.dice.SideCount())
	}
}

func TestParseDice(t *testing.T) {
	for _, tc := range allDice {
		d, err := ParseDice(tc.token)
		require.NoError(t, err)
		assert.Equal(t, tc.dice, d)

		// String is the inverse of ParseDice
		assert.Equal(t, tc.token, d.String())
	}
}

func TestParseDiceUnknown(t *testing.T) {
	invalid := []string{"d", "d2", "d13", "dd", "1d20", "D100", ""}

	for _, token := range invalid {
		_, err := ParseDice(token)
		require.Error(t, err, "token %q", token)

		var unknownErr *DiceUnknownError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, token, unknownErr.Token)
	}
}

func TestDiceRollStaysInRange(t *testing.T) {
	const timesRolled = 1000

	roller := NewRoller(&Config{Seed: 42})

	for _, tc := range allDice {
		for i := 0; i < timesRolled; i++ {
			rolled := tc.dice.Roll(roller)
			assert.Equal(t, tc.dice, rolled.Dice())
			assert.GreaterOrEqual(t, rolled.Result(), uint32(1))
			assert.LessOrEqual(t, rolled.Result(), tc.sides)
		}
	}
}

func TestRollerIsSafeForConcurrentUse(t *testing.T) {
	roller := NewRoller(&Config{Seed: 42})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				result := roller.Roll(20)
				assert.GreaterOrEqual(t, result, uint32(1))
				assert.LessOrEqual(t, result, uint32(20))
			}
		}()
	}
	wg.Wait()
}

func TestRollerIsDeterministicUnderSeed(t *testing.T) {
	first := NewRoller(&Config{Seed: 7})
	second := NewRoller(&Config{Seed: 7})

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Roll(20), second.Roll(20))
	}
}

func TestDiceUnknownErrorIsNotASetParseError(t *testing.T) {
	_, err := ParseDice("d7")
	assert.False(t, errors.Is(err, ErrDiceSetParse))
}
