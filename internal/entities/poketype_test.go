package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

func TestParsePokeType(t *testing.T) {
	pt, err := entities.ParsePokeType("fire")
	require.NoError(t, err)
	assert.Equal(t, entities.TypeFire, pt)

	pt, err = entities.ParsePokeType("  Rock ")
	require.NoError(t, err)
	assert.Equal(t, entities.TypeRock, pt)

	_, err = entities.ParsePokeType("fairy")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPokeTypeString(t *testing.T) {
	assert.Equal(t, "fire", entities.TypeFire.String())
	assert.Equal(t, "rock", entities.TypeRock.String())
	assert.Equal(t, "unknown", entities.PokeType(99).String())
}

func TestPokeTypeValid(t *testing.T) {
	assert.True(t, entities.TypeFire.Valid())
	assert.True(t, entities.TypeRock.Valid())
	assert.False(t, entities.PokeType(-1).Valid())
	assert.False(t, entities.PokeType(entities.NumPokeTypes).Valid())
}
