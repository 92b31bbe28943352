package formula

import (
	"context"
	"io"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// parseCache stores parsed expressions keyed by the xxh3 hash of their
// source. Trees are immutable and evaluation-context-free at rest, so a
// cached Expr is safe to share across callers and evaluations.
var parseCache sync.Map // uint64 -> Expr

// parseStringCached serves default-option parses from the cache.
// Only successful parses are cached; failures are re-diagnosed each time
// so callers always get a fresh error with source context.
func parseStringCached(ctx context.Context, input string) (Expr, error) {
	key := xxh3.HashString(input)

	if cached, ok := parseCache.Load(key); ok {
		return cached.(Expr), nil
	}

	p := &parser{maxDepth: DefaultMaxDepth}

	x, err := p.parse(ctx, input)
	if err != nil {
		return nil, err
	}

	actual, _ := parseCache.LoadOrStore(key, x)

	return actual.(Expr), nil
}

// ClearCache discards all cached parse results.
func ClearCache() {
	parseCache.Range(func(key, _ any) bool {
		parseCache.Delete(key)

		return true
	})
}

// ParseReader parses one expression from an io.Reader.
// The reader is wrapped with asynchronous read-ahead so data is
// pre-fetched while earlier chunks are consumed.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (Expr, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}
