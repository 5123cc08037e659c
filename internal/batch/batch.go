package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/phonepad/internal/keypad"
	"github.com/dshills/phonepad/internal/logging"
)

// ErrorOutput is the output recorded for an item that failed to decode.
const ErrorOutput = "ERROR"

// Result is the outcome of decoding one Item.
type Result struct {
	Source   string
	Line     int
	Input    string
	Output   string
	Duration time.Duration
	Err      error
}

// Runner decodes items over a bounded pool of goroutines.
type Runner struct {
	// Workers limits concurrent decodes. Zero or less means GOMAXPROCS.
	Workers int

	// Logger receives per-run and per-item records. Nil discards them.
	Logger *slog.Logger

	// Metrics, when set, observes every decoded item.
	Metrics *Metrics

	// Trace logs every decoding step at debug level.
	Trace bool

	// Decode overrides the decoder. Nil means keypad.Decode. An error
	// marks the item as failed.
	Decode func(string) (string, error)
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run decodes items and returns one Result per item, in input order.
// A panic while decoding an item is recovered into that item's Err.
// If ctx is cancelled before every item is decoded, Run returns the
// partial results along with ctx.Err().
func (r *Runner) Run(ctx context.Context, items []Item) ([]Result, error) {
	results := make([]Result, len(items))
	if len(items) == 0 {
		return results, nil
	}

	log := logging.OrNop(r.Logger).With(slog.String("run_id", uuid.NewString()))
	workers := r.workers()
	log.Info("batch started", slog.Int("items", len(items)), slog.Int("workers", workers))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.decodeItem(log, items[i])
			results[i] = res
			r.Metrics.Observe(res)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("batch cancelled", slog.Any("error", err))
		return results, err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	log.Info("batch finished",
		slog.Int("items", len(items)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}

func (r *Runner) decodeItem(log *slog.Logger, item Item) (res Result) {
	res = Result{Source: item.Source, Line: item.Line, Input: item.Input}
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if p := recover(); p != nil {
			res.Output = ErrorOutput
			res.Err = fmt.Errorf("%s:%d: decode panic: %v", item.Source, item.Line, p)
			log.Error("decode failed",
				slog.String("source", item.Source),
				slog.Int("line", item.Line),
				slog.Any("error", res.Err))
		}
	}()

	switch {
	case r.Decode != nil:
		out, err := r.Decode(item.Input)
		if err != nil {
			res.Output = ErrorOutput
			res.Err = fmt.Errorf("%s:%d: %w", item.Source, item.Line, err)
			log.Error("decode failed",
				slog.String("source", item.Source),
				slog.Int("line", item.Line),
				slog.Any("error", err))
			return res
		}
		res.Output = out
	case r.Trace:
		res.Output = keypad.DecodeTrace(item.Input, func(s keypad.Step) {
			log.Debug("step",
				slog.String("source", item.Source),
				slog.Int("line", item.Line),
				slog.String("step", s.String()))
		})
	default:
		res.Output = keypad.Decode(item.Input)
	}
	return res
}
