// SPDX-License-Identifier: MIT

// Package config resolves harness settings from the environment.
// A .env file in the working directory (or up to five parents) is loaded first;
// variables already set in the process environment win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAllocator   = "MALG_ALLOCATOR"
	EnvMaxElements = "MALG_MAX_ELEMENTS"
	EnvBenchSize   = "MALG_BENCH_SIZE"
	EnvVerbose     = "MALG_VERBOSE"
)

// Allocator kinds accepted by MALG_ALLOCATOR.
const (
	AllocatorHeap = "heap"
	AllocatorMmap = "mmap"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultAllocator = AllocatorHeap
	DefaultBenchSize = 256
)

// envSearchDepth bounds how many directories loadEnvFile walks upward.
const envSearchDepth = 5

// ErrInvalidConfig is returned for values that cannot be parsed or are out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings of cmd/malgcheck.
type Config struct {
	Allocator   string // heap | mmap
	MaxElements int    // HeapAllocator limit per pool, 0 = unlimited
	BenchSize   int    // side of the square matrices in the timing pass
	Verbose     bool   // print every matrix, not only the verdicts
}

// Load reads the configuration, loading a .env file first when one is found.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an arbitrary lookup function.
// Load passes os.Getenv; tests pass a map.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Allocator: DefaultAllocator,
		BenchSize: DefaultBenchSize,
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvAllocator))); v != "" {
		switch v {
		case AllocatorHeap, AllocatorMmap:
			cfg.Allocator = v
		default:
			return nil, fmt.Errorf("%w: %s=%q (want %s or %s)", ErrInvalidConfig, EnvAllocator, v, AllocatorHeap, AllocatorMmap)
		}
	}

	var err error
	if cfg.MaxElements, err = intVar(getenv, EnvMaxElements, 0, 0); err != nil {
		return nil, err
	}
	if cfg.BenchSize, err = intVar(getenv, EnvBenchSize, DefaultBenchSize, 1); err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		if cfg.Verbose, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvVerbose, v)
		}
	}

	return cfg, nil
}

// intVar parses name as an int >= floor, returning def when it is unset.
func intVar(getenv func(string) string, name string, def, floor int) (int, error) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < floor {
		return 0, fmt.Errorf("%w: %s=%q (want integer >= %d)", ErrInvalidConfig, name, v, floor)
	}

	return n, nil
}

// loadEnvFile looks upward from the working directory for a .env file.
// A missing file is not an error.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
