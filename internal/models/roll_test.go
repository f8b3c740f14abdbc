package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRollIdRoundTrip(t *testing.T) {
	minted := RollIdFromUUID(uuid.Must(uuid.NewV7()))

	parsed, err := ParseRollId(minted.String())
	require.NoError(t, err)
	assert.Equal(t, minted, parsed)
	assert.Equal(t, minted.UUID(), parsed.UUID())
}

func TestParseRollIdRejectsMalformedText(t *testing.T) {
	invalid := []string{
		"",
		"not-a-uuid",
		// undashed, braced and urn forms are valid to the uuid package but
		// not canonical, so they are rejected
		"0190a6ee7b2c7c0c8f5ad0c0ffee0000",
		"{0190a6ee-7b2c-7c0c-8f5a-d0c0ffee0000}",
		"urn:uuid:0190a6ee-7b2c-7c0c-8f5a-d0c0ffee0000",
		"0190a6ee-7b2c-7c0c-8f5a-d0c0ffee00",
		"z190a6ee-7b2c-7c0c-8f5a-d0c0ffee0000",
	}

	for _, text := range invalid {
		_, err := ParseRollId(text)
		assert.ErrorIs(t, err, ErrRollIdParse, "text %q", text)
	}
}

func TestRollIdsAreTimeOrdered(t *testing.T) {
	first := RollIdFromUUID(uuid.Must(uuid.NewV7()))
	second := RollIdFromUUID(uuid.Must(uuid.NewV7()))

	assert.LessOrEqual(t, first.String(), second.String())
}
