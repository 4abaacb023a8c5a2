// Package feedback provides the feedback-sink collaborator for generated
// prompts. Recording is fire-and-forget: a well-formed call always succeeds
// and an unknown prompt id is accepted silently, because feedback must never
// invalidate the prompt it refers to.
package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Entry is one piece of caller feedback about a generated prompt.
type Entry struct {
	PromptID         string `json:"promptId"`
	ConfigName       string `json:"configName,omitempty"`
	Rating           int    `json:"rating"`
	Comments         string `json:"comments,omitempty"`
	GeneratedIconURL string `json:"generatedIconUrl,omitempty"`
}

// Recorder is the injected feedback sink. Implementations return an opaque
// feedback id unique per call.
type Recorder interface {
	Record(ctx context.Context, entry Entry) (string, error)
}

// MemoryRecorder keeps entries in memory for the lifetime of the process.
// Persistence is deliberately out of scope.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{entries: make(map[string]Entry)}
}

// Record stores the entry under a fresh uuid and returns the id.
func (r *MemoryRecorder) Record(_ context.Context, entry Entry) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	r.entries[id] = entry
	r.mu.Unlock()
	return id, nil
}

// Count returns the number of recorded entries.
func (r *MemoryRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
