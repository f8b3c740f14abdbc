package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/hexhaus/dicehall/internal/common/uuid UUID

// UUID mints version-7 UUIDs. Roll ids must sort by mint time, so the
// generator hands out v7 values rather than random v4 ones.
type UUID interface {
	NewUUID() uuid.UUID
}

// DefaultUUID implements the UUID interface using the uuid package

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new time-ordered UUID
func (d *DefaultUUID) NewUUID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
