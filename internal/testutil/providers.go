package testutil

import (
	"context"
	"sync"

	"github.com/mpl-id/mpl-chat-service/internal/domain"
)

// StubDatasetProvider returns Dataset or Err.
type StubDatasetProvider struct {
	Dataset domain.Dataset
	Err     error
}

func (p StubDatasetProvider) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx
	if p.Err != nil {
		return domain.Dataset{}, p.Err
	}
	return p.Dataset, nil
}

// StubCompleter records calls and returns Text or Err.
type StubCompleter struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

func (c *StubCompleter) Complete(ctx context.Context, prompt, systemInstruction string, temperature float64) (string, error) {
	_ = ctx
	_ = systemInstruction
	_ = temperature
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	return c.Text, nil
}

// Calls returns how many completions were requested.
func (c *StubCompleter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}

// Prompts returns a copy of every prompt sent.
func (c *StubCompleter) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
