package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecorder_UniqueIDs(t *testing.T) {
	r := NewMemoryRecorder()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := r.Record(ctx, Entry{PromptID: "prompt-1", Rating: i})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "feedback id reused")
		seen[id] = true
	}
	assert.Equal(t, 20, r.Count())
}

func TestMemoryRecorder_UnknownPromptIDAccepted(t *testing.T) {
	r := NewMemoryRecorder()
	id, err := r.Record(context.Background(), Entry{PromptID: "never-issued", Rating: 11})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
