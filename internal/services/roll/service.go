package roll

import (
	"context"

	"github.com/hexhaus/dicehall/internal/common/clock"
	"github.com/hexhaus/dicehall/internal/common/uuid"
	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/meters"
	"github.com/hexhaus/dicehall/internal/models"
	rollRepo "github.com/hexhaus/dicehall/internal/repositories/roll"
)

// service implements the Service interface
type service struct {
	rollRepo rollRepo.Repository
	meter    meters.Meter
	roller   dice.Roller
	clock    clock.Clock
	uuidGen  uuid.UUID
}

// New creates a new roll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RollRepo == nil {
		return nil, ErrNilRollRepo
	}
	if cfg.Meter == nil {
		return nil, ErrNilMeter
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		rollRepo: cfg.RollRepo,
		meter:    cfg.Meter,
		roller:   cfg.Roller,
		clock:    cfg.Clock,
		uuidGen:  cfg.UUIDGenerator,
	}, nil
}

// RollDices rolls the dice set, meters the outcome and persists it under a
// freshly minted id. A failed roll (bound overflow) aborts before any id is
// minted or side effect happens. A failed save surfaces the storage error:
// the roll happened but the caller gets no id, so the roll is lost rather
// than partially visible.
func (s *service) RollDices(ctx context.Context, input *RollDicesInput) (*RollDicesOutput, error) {
	results, err := input.DiceSet.Roll(s.roller)
	if err != nil {
		return nil, err
	}

	id := models.RollIdFromUUID(s.uuidGen.NewUUID())

	// Metering happens before persistence and cannot fail the request.
	s.meter.ObserveRoll(ctx, results)

	err = s.rollRepo.SaveRoll(ctx, &rollRepo.SaveRollInput{
		Roll: &models.Roll{
			ID:        id,
			Results:   results,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &RollDicesOutput{
		RollID:  id,
		Results: results,
	}, nil
}

// GetDiceRoll retrieves a past roll. A lookup miss surfaces the
// repository's rollRepo.ErrRollNotFound unchanged.
func (s *service) GetDiceRoll(ctx context.Context, input *GetDiceRollInput) (*GetDiceRollOutput, error) {
	stored, err := s.rollRepo.GetRoll(ctx, &rollRepo.GetRollInput{
		RollID: input.RollID,
	})
	if err != nil {
		return nil, err
	}

	return &GetDiceRollOutput{
		RollID:  input.RollID,
		Results: stored.Results,
	}, nil
}
