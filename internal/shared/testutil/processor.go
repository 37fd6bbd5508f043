package testutil

import (
	"context"
	"sync"
)

// RecordingProcessor is a form-data collaborator that remembers every mapping it receives
type RecordingProcessor struct {
	mu    sync.Mutex
	calls []map[string]string

	// Err, when set, is returned from Process after recording the call
	Err error
}

func NewRecordingProcessor() *RecordingProcessor {
	return &RecordingProcessor{}
}

func (p *RecordingProcessor) Process(_ context.Context, data map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}
	p.calls = append(p.calls, copied)
	return p.Err
}

// Calls returns the mappings received so far
func (p *RecordingProcessor) Calls() []map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]map[string]string(nil), p.calls...)
}
