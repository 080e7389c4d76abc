package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdle/go-server/internal/game"
	"github.com/nerdle/go-server/internal/store"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	m := store.NewMemoryStore()
	ctx := context.Background()

	g := game.New("12+35=47")
	require.NoError(t, m.Save(ctx, g))

	got, err := m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
