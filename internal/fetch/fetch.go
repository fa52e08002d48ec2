// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package fetch runs independent work items (downloads, liveness probes, file scans)
// with bounded parallelism and collects one result per input.
package fetch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Options bounds a Map call.
type Options struct {
	Workers       int           // max concurrent items; <= 0 means 1
	Timeout       time.Duration // per-item deadline; 0 disables it
	RatePerSecond float64       // max item starts per second; 0 disables limiting
}

// Result is the outcome of one input. Index is the position of the input that produced it.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// OK reports whether the item succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Map calls fn for every input and returns the results in input order. Items run
// concurrently up to opts.Workers; a failing, panicking or timed-out item only marks
// its own slot and never stops the batch. Each goroutine writes to its own slot, so no
// locking is needed.
func Map[In, Out any](ctx context.Context, opts Options, inputs []In, fn func(context.Context, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			results[i] = runItem(ctx, opts.Timeout, limiter, i, in, fn)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func runItem[In, Out any](ctx context.Context, timeout time.Duration, limiter *rate.Limiter, idx int, in In, fn func(context.Context, In) (Out, error)) (res Result[Out]) {
	res.Index = idx

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("item %d panicked: %v", idx, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			res.Err = fmt.Errorf("rate limit wait: %w", err)
			return res
		}
	}

	itemCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res.Value, res.Err = fn(itemCtx, in)
	return res
}

// Values returns the values of the successful results, in input order.
func Values[T any](results []Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.OK() {
			out = append(out, r.Value)
		}
	}
	return out
}

// Failed counts the results that carry an error.
func Failed[T any](results []Result[T]) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
