package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	second, err := uuid.Parse(g.Generate())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first.String()[:8], second.String()[:8], "v7 ids sort by creation time")
}
