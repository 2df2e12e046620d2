package word

import (
	"context"
	"log/slog"
	"sync"
)

// FetchResult carries the outcome of an asynchronous fetch.
type FetchResult struct {
	Records []Record
	Err     error
}

// Fetcher runs source fetches asynchronously with last-request-wins
// semantics: starting a new fetch cancels the in-flight one, and a stale
// fetch's results are discarded on arrival instead of being delivered.
type Fetcher struct {
	source Source

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64
}

// NewFetcher creates a fetcher over the given source.
func NewFetcher(source Source) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch starts an asynchronous fetch and returns a channel that delivers at
// most one result. The channel is closed without a result if the fetch is
// superseded by a later Fetch call or cancelled through ctx.
func (f *Fetcher) Fetch(ctx context.Context, limit int) <-chan FetchResult {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.generation++
	generation := f.generation
	f.mu.Unlock()

	resultCh := make(chan FetchResult, 1)
	go func() {
		defer close(resultCh)

		records, err := f.source.FetchCandidates(fetchCtx, limit)

		f.mu.Lock()
		stale := generation != f.generation
		f.mu.Unlock()
		if stale || fetchCtx.Err() != nil {
			slog.Debug("discarding superseded fetch result", "generation", generation)
			return
		}

		resultCh <- FetchResult{Records: records, Err: err}
	}()
	return resultCh
}

// Stop cancels any in-flight fetch.
func (f *Fetcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.generation++
}
