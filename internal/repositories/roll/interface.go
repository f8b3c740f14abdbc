package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hexhaus/dicehall/internal/repositories/roll Repository

import (
	"context"
	"errors"

	"github.com/hexhaus/dicehall/internal/models"
)

// ErrRollNotFound is returned when no roll was ever saved under the id.
var ErrRollNotFound = errors.New("dice roll not found")

// Repository defines the interface for roll history persistence. Once
// SaveRoll returns successfully the roll must be retrievable by GetRoll, at
// the adapter's own durability level. Adapters must be safe under concurrent
// calls with distinct ids; the duplicate-id policy (overwrite or append) is
// adapter-specific and documented on each implementation.
type Repository interface {
	// SaveRoll persists a roll under its id
	SaveRoll(ctx context.Context, input *SaveRollInput) error

	// GetRoll retrieves a roll by id
	GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error)
}
