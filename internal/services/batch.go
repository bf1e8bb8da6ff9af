package services

import (
	"context"
	"fmt"
	"runtime"

	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor fans addresses out over a bounded set of workers while
// keeping results in input order.
type BatchProcessor struct {
	processor interfaces.AddressProcessor
	workers   int
	logger    *zap.Logger
}

// NewBatchProcessor creates a processor. workers <= 0 means GOMAXPROCS.
func NewBatchProcessor(processor interfaces.AddressProcessor, workers int, logger *zap.Logger) *BatchProcessor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		processor: processor,
		workers:   workers,
		logger:    logger,
	}
}

// Workers returns the concurrency limit.
func (b *BatchProcessor) Workers() int {
	return b.workers
}

// ForEach calls fn for every index in [0, n) with at most Workers calls in
// flight. It stops scheduling once ctx is done and returns ctx's error.
func (b *BatchProcessor) ForEach(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Process runs every address through the pipeline. A failure in one row is
// isolated to that row's record. The returned slice always has one entry per
// input; rows skipped after cancellation carry an error issue.
func (b *BatchProcessor) Process(ctx context.Context, addresses []string) ([]business.FormattedAddress, error) {
	results := make([]business.FormattedAddress, len(addresses))
	done := make([]bool, len(addresses))

	err := b.ForEach(ctx, len(addresses), func(i int) {
		results[i] = b.processOne(addresses[i])
		done[i] = true
	})
	if err != nil {
		b.logger.Warn("batch interrupted", zap.Error(err))
		for i := range results {
			if !done[i] {
				results[i] = ErrorResult(addresses[i], fmt.Sprintf("Processing error: %s", err))
			}
		}
	}

	b.logger.Info("batch processed",
		zap.Int("addresses", len(addresses)),
		zap.Int("workers", b.workers),
	)
	return results, err
}

func (b *BatchProcessor) processOne(address string) (result business.FormattedAddress) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("address processing panicked",
				zap.String("address", address),
				zap.Any("panic", r),
			)
			result = ErrorResult(address, fmt.Sprintf("Processing error: %v", r))
		}
	}()
	return b.processor.Process(address)
}
