package roll

import (
	"context"
	"errors"
	"sync"

	"github.com/hexhaus/dicehall/internal/models"
)

// memoryRepository implements the Repository interface with an in-process
// map. Rolls live as long as the process does; it is the reference adapter
// for tests and prototyping.
//
// Saving under an already-used id overwrites the previous roll
// (last-writer-wins). A single reader/writer lock guards the map: reads run
// concurrently, a save blocks everything until it completes.
type memoryRepository struct {
	mu    sync.RWMutex
	rolls map[models.RollId]*models.Roll
}

// NewMemory creates a new in-memory roll repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rolls: make(map[models.RollId]*models.Roll),
	}
}

// SaveRoll stores a roll in the map
func (r *memoryRepository) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	stored := *input.Roll

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls[stored.ID] = &stored

	return nil
}

// GetRoll retrieves a roll from the map
func (r *memoryRepository) GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.rolls[input.RollID]
	if !ok {
		return nil, ErrRollNotFound
	}

	out := *stored
	return &out, nil
}
