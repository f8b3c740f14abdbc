package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hexhaus/dicehall/internal/services/roll Service

import "context"

// Service defines the interface for roll operations
type Service interface {
	// RollDices rolls a dice set, records the outcome and returns it
	// together with its freshly minted id
	RollDices(ctx context.Context, input *RollDicesInput) (*RollDicesOutput, error)

	// GetDiceRoll retrieves a previously rolled dice set by id
	GetDiceRoll(ctx context.Context, input *GetDiceRollInput) (*GetDiceRollOutput, error)
}
