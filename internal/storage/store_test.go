package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadMissingCollectionIsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var records []record
	require.NoError(t, store.Read("founders", &records))
	require.Empty(t, records)
}

func TestReplaceThenReadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	want := []record{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}}
	require.NoError(t, store.Replace("founders", want))

	var got []record
	require.NoError(t, store.Read("founders", &got))
	require.Equal(t, want, got)
}

func TestReplaceOverwritesWithoutMerge(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Replace("founders", []record{{ID: "1", Name: "Alice"}}))
	require.NoError(t, store.Replace("founders", []record{{ID: "9", Name: "Zoe"}}))

	var got []record
	require.NoError(t, store.Read("founders", &got))
	require.Equal(t, []record{{ID: "9", Name: "Zoe"}}, got)
}
