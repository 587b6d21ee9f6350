// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/line-comment/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestRecordAndRecent(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := store.Record(ctx, types.Run{
		Input:        "a.c",
		Output:       "out/a.c",
		Status:       types.ConversionDone,
		Regions:      3,
		LinesEmitted: 7,
		LinesDropped: 2,
		BytesIn:      120,
		BytesOut:     118,
		At:           at,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = store.Record(ctx, types.RunFromResult(
		types.FileResult{Input: "b.c", Output: "out/b.c"},
		errors.New("reading b.c: permission denied"),
	))
	require.NoError(t, err)

	runs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "b.c", runs[0].Input)
	assert.Equal(t, types.ConversionFailed, runs[0].Status)
	assert.Equal(t, "reading b.c: permission denied", runs[0].Error)
	assert.False(t, runs[0].At.IsZero())

	assert.Equal(t, id, runs[1].ID)
	assert.Equal(t, "out/a.c", runs[1].Output)
	assert.Equal(t, types.ConversionDone, runs[1].Status)
	assert.Equal(t, 3, runs[1].Regions)
	assert.Equal(t, 7, runs[1].LinesEmitted)
	assert.Equal(t, 2, runs[1].LinesDropped)
	assert.Equal(t, 120, runs[1].BytesIn)
	assert.Equal(t, 118, runs[1].BytesOut)
	assert.Empty(t, runs[1].Error)
	assert.True(t, at.Equal(runs[1].At))
}

func TestRecent_Limit(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	for i := range 25 {
		_, err := store.Record(ctx, types.Run{
			Input:  fmt.Sprintf("f%02d.c", i),
			Output: "out",
			Status: types.ConversionDone,
		})
		require.NoError(t, err)
	}

	runs, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	assert.Equal(t, "f24.c", runs[0].Input)

	runs, err = store.Recent(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, runs, defaultLimit)
}

func TestRecent_Empty(t *testing.T) {
	store, _ := testStore(t)
	runs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_Reopen(t *testing.T) {
	store, path := testStore(t)
	_, err := store.Record(context.Background(), types.Run{Input: "a.c", Output: "b.c", Status: types.ConversionDone})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "a.c", runs[0].Input)
}
