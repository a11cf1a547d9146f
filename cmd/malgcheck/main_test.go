// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/malg/internal/config"
	"github.com/katalvlaran/malg/matrix"
)

// TestChecksPass runs every scenario on both allocators.
func TestChecksPass(t *testing.T) {
	for _, kind := range []string{config.AllocatorHeap, config.AllocatorMmap} {
		cfg := &config.Config{Allocator: kind, BenchSize: 8}
		for _, c := range checks {
			t.Run(kind+"/"+c.name, func(t *testing.T) {
				require.NoError(t, c.run(cfg))
			})
		}
	}
}

// TestChecksReportErrors surfaces accessor and allocation errors instead of comparing zero values.
func TestChecksReportErrors(t *testing.T) {
	cfg := &config.Config{Allocator: config.AllocatorHeap, MaxElements: 4}

	require.ErrorIs(t, checkDefaultFill(cfg), matrix.ErrAllocationFailure)
	require.ErrorIs(t, checkFloatLiteral(cfg), matrix.ErrAllocationFailure)
	require.NoError(t, checkCopyMove(cfg), "2x2 fits the limit")
}

// TestTimingPass completes on a small size.
func TestTimingPass(t *testing.T) {
	cfg := &config.Config{Allocator: config.AllocatorHeap, BenchSize: 4}
	require.NoError(t, timingPass(context.Background(), cfg, io.Discard))
}
