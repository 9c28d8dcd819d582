// Package aggregate computes the sum or mean of the numbers in a text
// source, one number per line.
package aggregate

import (
	"context"
	"io"

	"github.com/brimdata/calc/pkg/storage"
	"github.com/brimdata/calc/reducer"
	"github.com/brimdata/calc/zio/lineio"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Aggregator struct {
	engine storage.Engine
	logger *zap.Logger
}

func New(engine storage.Engine, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{engine: engine, logger: logger}
}

// File opens path with the aggregator's engine and reduces its lines with
// op.  An error opening, reading, or closing the source is returned as is
// and no partial result is produced.
func (a *Aggregator) File(ctx context.Context, path string, op reducer.Operation) (float64, error) {
	u, err := storage.ParseURI(path)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("Opening source", zap.Stringer("uri", u), zap.Stringer("operation", op))
	r, err := a.engine.Get(ctx, u)
	if err != nil {
		return 0, err
	}
	acc, err := consume(ctx, r)
	if closeErr := r.Close(); closeErr != nil {
		err = multierr.Append(err, closeErr)
	}
	if err != nil {
		return 0, err
	}
	a.logger.Debug("Source consumed",
		zap.Stringer("uri", u),
		zap.Uint64("parsed", acc.Count()),
		zap.Uint64("blank", acc.Blank),
		zap.Uint64("unparsed", acc.Unparsed))
	return acc.Result(op), nil
}

func (a *Aggregator) Mean(ctx context.Context, path string) (float64, error) {
	return a.File(ctx, path, reducer.Mean)
}

func (a *Aggregator) Sum(ctx context.Context, path string) (float64, error) {
	return a.File(ctx, path, reducer.Sum)
}

// File is a convenience for New(engine, nil).File(ctx, path, op).
func File(ctx context.Context, engine storage.Engine, path string, op reducer.Operation) (float64, error) {
	return New(engine, nil).File(ctx, path, op)
}

// Reduce folds every line of r and reduces the result with op.  It does
// not close r.
func Reduce(ctx context.Context, r io.Reader, op reducer.Operation) (float64, error) {
	acc, err := consume(ctx, r)
	if err != nil {
		return 0, err
	}
	return acc.Result(op), nil
}

func consume(ctx context.Context, r io.Reader) (*reducer.Accumulator, error) {
	var acc reducer.Accumulator
	reader := lineio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := reader.Read()
		if err != nil {
			return nil, err
		}
		if line == nil {
			return &acc, nil
		}
		acc.Consume(*line)
	}
}
