// SPDX-License-Identifier: MIT

// Command malgcheck runs the reference matrix scenarios end to end and prints a
// verdict per scenario, followed by a short timing pass.
//
// Settings come from the environment (or a .env file), see internal/config:
//
//	MALG_ALLOCATOR=heap|mmap  MALG_MAX_ELEMENTS=0  MALG_BENCH_SIZE=256  MALG_VERBOSE=false
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/malg/internal/config"
	"github.com/katalvlaran/malg/matrix"
)

// check is one named scenario; run returns nil on success.
type check struct {
	name string
	run  func(cfg *config.Config) error
}

var checks = []check{
	{"value-initialized 100x50", checkDefaultFill},
	{"list-initialized float32", checkFloatLiteral},
	{"matrix * matrix", checkMul},
	{"scalar * matrix", checkScale},
	{"transpose square in place", checkTransposeSquare},
	{"transpose non-square in place", checkTransposeWide},
	{"copy and move", checkCopyMove},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Println(err)
		os.Exit(2)
	}

	writer := uilive.New()
	status := writer.Newline()
	timing := writer.Newline()
	writer.Start()

	failed := 0
	for i, c := range checks {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprintf(status, "[%d/%d] %s\n", i+1, len(checks), c.name)
		if err := c.run(cfg); err != nil {
			failed++
			log.Printf("TEST %d (%s): FAILED: %v", i+1, c.name, err)
			continue
		}
		log.Printf("TEST %d (%s): PASSED", i+1, c.name)
	}
	fmt.Fprintf(status, "%d/%d scenarios passed\n", len(checks)-failed, len(checks))

	if ctx.Err() == nil {
		if err := timingPass(ctx, cfg, timing); err != nil {
			failed++
			log.Printf("timing pass: %v", err)
		}
	}
	writer.Stop()

	if failed > 0 {
		os.Exit(1)
	}
	log.Println("ALL TESTS COMPLETE")
}

// allocatorFor returns the allocator selected by cfg for element type T.
func allocatorFor[T matrix.Number](cfg *config.Config) matrix.Allocator[T] {
	if cfg.Allocator == config.AllocatorMmap {
		return matrix.NewMmapAllocator[T]()
	}

	return matrix.HeapAllocator[T]{MaxElements: cfg.MaxElements}
}

// expectRows compares m cell by cell with want.
func expectRows[T matrix.Number](m *matrix.Matrix[T], want [][]T) error {
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		return fmt.Errorf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	for i, row := range want {
		got, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if got[j] != v {
				return fmt.Errorf("cell (%d,%d) = %v, want %v", i, j, got[j], v)
			}
		}
	}

	return nil
}

func dump[T matrix.Number](cfg *config.Config, label string, m *matrix.Matrix[T]) {
	if cfg.Verbose {
		log.Printf("%s:\n%s", label, m)
	}
}

func checkDefaultFill(cfg *config.Config) error {
	m, err := matrix.New(100, 50, matrix.WithAllocator(allocatorFor[int](cfg)))
	if err != nil {
		return err
	}
	defer m.Release()

	first, err := m.At(0, 0)
	if err != nil {
		return err
	}
	last, err := m.At(99, 49)
	if err != nil {
		return err
	}
	if first != 0 || last != 0 {
		return fmt.Errorf("corners %d, %d; want 0, 0", first, last)
	}

	return nil
}

func checkFloatLiteral(cfg *config.Config) error {
	m, err := matrix.FromRows([][]float32{
		{1.0, 3.2, 6.0},
		{4.2, 6.0, 9.9},
	}, matrix.WithAllocator(allocatorFor[float32](cfg)))
	if err != nil {
		return err
	}
	defer m.Release()
	dump(cfg, "literal", m)

	a, err := m.At(0, 1)
	if err != nil {
		return err
	}
	b, err := m.At(1, 1)
	if err != nil {
		return err
	}
	if a != float32(3.2) || b != float32(6.0) {
		return fmt.Errorf("got %v, %v; want 3.2, 6", a, b)
	}

	return nil
}

func checkMul(cfg *config.Config) error {
	alloc := matrix.WithAllocator(allocatorFor[int](cfg))
	p, err := matrix.FromRows([][]int{
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
	}, alloc)
	if err != nil {
		return err
	}
	defer p.Release()
	x, err := matrix.FromRows([][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}, alloc)
	if err != nil {
		return err
	}
	defer x.Release()

	px, err := matrix.Mul(p, x)
	if err != nil {
		return err
	}
	defer px.Release()
	dump(cfg, "P*X", px)
	if err = expectRows(px, [][]int{{4, 5}, {0, 1}, {6, 7}, {2, 3}}); err != nil {
		return err
	}

	// incompatible dimensions must be reported, not computed
	if _, err = matrix.Mul(x, p); !errors.Is(err, matrix.ErrDimensionMismatch) {
		return fmt.Errorf("X*P: got %v, want %v", err, matrix.ErrDimensionMismatch)
	}

	return nil
}

func checkScale(cfg *config.Config) error {
	a, err := matrix.FromRows([][]int{{0, 1}, {3, 4}}, matrix.WithAllocator(allocatorFor[int](cfg)))
	if err != nil {
		return err
	}
	defer a.Release()

	left, err := matrix.ScaleLeft(2, a)
	if err != nil {
		return err
	}
	defer left.Release()
	right, err := matrix.Scale(a, 2)
	if err != nil {
		return err
	}
	defer right.Release()
	dump(cfg, "2*A", left)

	if err = expectRows(left, [][]int{{0, 2}, {6, 8}}); err != nil {
		return err
	}
	if !matrix.Equal(left, right) {
		return errors.New("2*A != A*2")
	}

	return nil
}

func checkTransposeSquare(cfg *config.Config) error {
	m, err := matrix.FromRows([][]int{
		{1, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
	}, matrix.WithAllocator(allocatorFor[int](cfg)))
	if err != nil {
		return err
	}
	defer m.Release()

	if err = m.Transpose(); err != nil {
		return err
	}
	dump(cfg, "transposed", m)

	return expectRows(m, [][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	})
}

func checkTransposeWide(cfg *config.Config) error {
	m, err := matrix.FromRows([][]int{
		{11, 12, 13, 14},
		{21, 22, 23, 24},
	}, matrix.WithAllocator(allocatorFor[int](cfg)))
	if err != nil {
		return err
	}
	defer m.Release()

	if err = m.Transpose(); err != nil {
		return err
	}
	dump(cfg, "transposed", m)
	if err = expectRows(m, [][]int{{11, 21}, {12, 22}, {13, 23}, {14, 24}}); err != nil {
		return err
	}

	// and back
	if err = m.Transpose(); err != nil {
		return err
	}

	return expectRows(m, [][]int{{11, 12, 13, 14}, {21, 22, 23, 24}})
}

func checkCopyMove(cfg *config.Config) error {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithAllocator(allocatorFor[float64](cfg)))
	if err != nil {
		return err
	}
	defer a.Release()

	c, err := a.Clone()
	if err != nil {
		return err
	}
	defer c.Release()
	if err = c.Set(0, 0, 100); err != nil {
		return err
	}
	v, err := a.At(0, 0)
	if err != nil {
		return err
	}
	if v != 1 {
		return fmt.Errorf("copy is not independent: original (0,0) = %v", v)
	}

	moved := c.Move()
	defer moved.Release()
	if !c.IsEmpty() || c.Rows() != 0 || c.Cols() != 0 {
		return errors.New("moved-from matrix is not empty")
	}

	return expectRows(moved, [][]float64{{100, 2}, {3, 4}})
}

// timingPass times Mul and both transpose paths on BenchSize-sided matrices.
func timingPass(ctx context.Context, cfg *config.Config, out io.Writer) error {
	n := cfg.BenchSize
	alloc := allocatorFor[float64](cfg)
	a, err := matrix.New(n, n, matrix.WithAllocator(alloc), matrix.WithFill(0.5))
	if err != nil {
		return err
	}
	defer a.Release()
	w, err := matrix.New(n, 2*n, matrix.WithAllocator(alloc), matrix.WithFill(1.0))
	if err != nil {
		return err
	}
	defer w.Release()

	steps := []struct {
		name string
		run  func() error
	}{
		{"mul", func() error {
			p, err := matrix.Mul(a, a)
			if err != nil {
				return err
			}
			return p.Release()
		}},
		{"transpose square", a.Transpose},
		{"transpose non-square", w.Transpose},
	}
	for _, s := range steps {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintf(out, "timing %s (n=%d)...\n", s.name, n)
		start := time.Now()
		if err = s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		log.Printf("%-20s n=%-5d %v", s.name, n, time.Since(start))
	}
	fmt.Fprintf(out, "timing done (allocator=%s)\n", cfg.Allocator)

	return nil
}
