package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileResult is the output for one input of a multi-file run.
type FileResult struct {
	File    string `json:"file" yaml:"file"`
	Results any    `json:"results" yaml:"results"`
}

// runBatch extracts every path concurrently. The first failure cancels the
// files not yet started. Output order follows the argument order.
func runBatch(ctx context.Context, paths []string, opts *options, logger *slog.Logger) ([]FileResult, error) {
	for _, path := range paths {
		if path == "-" {
			return nil, errors.New("stdin cannot be combined with other inputs")
		}
	}

	out := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ext, name, err := newExtractor(nil, []string{path})
			if err != nil {
				return err
			}
			ext, err = configure(ext, opts)
			if err != nil {
				return err
			}
			result, err := extract(ext, name, opts.tablesOnly, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = FileResult{File: path, Results: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
