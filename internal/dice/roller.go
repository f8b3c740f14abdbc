package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/hexhaus/dicehall/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the source of entropy for dice rolls. Injecting it keeps rolls
// deterministic under seeding and mockable in tests.
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, sides].
	Roll(sides uint32) uint32
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randRoller implements the Roller interface using math/rand. The mutex
// serializes draws so one roller can serve concurrent callers.
type randRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRoller creates a new dice roller. A zero or absent seed falls back to
// the current time.
func NewRoller(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &randRoller{
		random: rand.New(source),
	}
}

// Roll generates a random result for a die with the given number of sides
func (r *randRoller) Roll(sides uint32) uint32 {
	if sides < 1 {
		return 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.random.Int63n(int64(sides))) + 1
}
