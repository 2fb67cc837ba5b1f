package mock

import (
	"context"

	"github.com/fwojciec/podnote"
)

var _ podnote.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of podnote.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req *podnote.FetchRequest) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, req *podnote.FetchRequest) (string, error) {
	return f.FetchFn(ctx, req)
}
