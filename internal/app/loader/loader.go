// Package loader writes the rates dataset into the key-value store at startup.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yama6a/zip-tax-rates/internal/pkg/dataset"
	"github.com/yama6a/zip-tax-rates/internal/pkg/store"
	"go.uber.org/zap"
)

type Loader struct {
	store     store.Store
	storeName string
	logger    *zap.Logger
}

func NewLoader(s store.Store, storeName string, logger *zap.Logger) *Loader {
	return &Loader{
		store:     s,
		storeName: storeName,
		logger:    logger,
	}
}

// Load writes every row to the store, one acknowledged Put at a time, and returns the
// number of rows written. The first read or write error aborts the load.
//
// Each run rewrites every key, even when the store already holds the dataset from a
// previous start. Later rows with the same ZIP overwrite earlier ones.
func (l *Loader) Load(ctx context.Context, rows dataset.Rows) (int, error) {
	start := time.Now()
	l.logger.Info("loading rates dataset", zap.String("store", l.storeName))

	written := 0
	for {
		if err := ctx.Err(); err != nil {
			return written, fmt.Errorf("load aborted after %d rows: %w", written, err)
		}

		rec, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.logger.Error("failed reading dataset record", zap.Int("record", written+1), zap.Error(err))
			return written, fmt.Errorf("failed reading record %d: %w", written+1, err)
		}

		if err := l.store.Put(ctx, l.storeName, string(rec.ZIP), string(rec.Rate)); err != nil {
			l.logger.Error("failed writing rate",
				zap.String("zip", string(rec.ZIP)),
				zap.Int("record", written+1),
				zap.Error(err))
			return written, fmt.Errorf("failed writing zip %q: %w", rec.ZIP, err)
		}
		written++
	}

	l.logger.Info("rates dataset loaded",
		zap.Int("rows", written),
		zap.Duration("took", time.Since(start)))

	return written, nil
}
