package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStatusStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStatusStore()

	_, found, err := store.Get(ctx, "123")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, "123", "pending"))

	status, found, err := store.Get(ctx, "123")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "pending", status)

	// last write wins
	require.NoError(t, store.Set(ctx, "123", "approved"))
	status, _, _ = store.Get(ctx, "123")
	require.Equal(t, "approved", status)
}

func TestMemoryStatusStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStatusStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set(ctx, fmt.Sprintf("pay-%d", n), "pending")
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _, _ = store.Get(ctx, fmt.Sprintf("pay-%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		status, found, err := store.Get(ctx, fmt.Sprintf("pay-%d", i))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "pending", status)
	}
}

func TestDecodeText(t *testing.T) {
	require.Equal(t, "approved", decodeText("approved"))
	require.Equal(t, "approved", decodeText([]byte("approved")))
	require.Equal(t, "", decodeText(nil))
}
