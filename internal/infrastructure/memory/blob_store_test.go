package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/infrastructure/memory"
)

func TestBlobStore_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	s := memory.NewBlobStore()

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)

	data := []byte(`{"a":1}`)
	require.NoError(t, s.Save(ctx, "k", data))
	data[0] = 'X'

	got, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	got, err = s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlobStore_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := memory.NewBlobStore()

	assert.ErrorIs(t, s.Save(ctx, "k", []byte("x")), context.Canceled)
	_, err := s.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
