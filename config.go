package goBcrypt

import (
	"errors"
	"runtime"
	"time"

	"github.com/MrEthical07/goBcrypt/password"
)

// Config defines a public type used by goBcrypt APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Pool     PoolConfig
	Hash     HashConfig
	Throttle ThrottleConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
POOL CONFIG
====================================
*/

// PoolConfig sizes the bounded worker pool that executes bcrypt jobs.
// Workers <= 0 selects runtime.NumCPU at build time.
type PoolConfig struct {
	Workers int
}

/*
====================================
HASH CONFIG
====================================
*/

// HashConfig selects the bcrypt version identifier stamped on generated
// digests. Empty selects "2y". Accepted values: "2a", "2b", "2y".
type HashConfig struct {
	Prefix string
}

/*
====================================
THROTTLE CONFIG
====================================
*/

// ThrottleConfig caps submissions per caller context per fixed window.
// It takes effect only when a Redis client is supplied through
// [Builder.WithRedis].
type ThrottleConfig struct {
	Enabled      bool
	MaxPerWindow int
	Window       time.Duration
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig tunes the async diagnostic dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig enables the allocation-free counters and, optionally,
// the job-latency histogram.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Pool: PoolConfig{
			Workers: 0, // resolved to runtime.NumCPU in Build
		},
		Hash: HashConfig{
			Prefix: password.DefaultPrefix,
		},
		Throttle: ThrottleConfig{
			Enabled:      false,
			MaxPerWindow: 100,
			Window:       time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; a shallow copy is a deep copy.
	return cfg
}

// Validate checks the configuration for internally inconsistent values.
func (c Config) Validate() error {
	if c.Hash.Prefix != "" {
		switch c.Hash.Prefix {
		case "2a", "2b", "2y":
		default:
			return errors.New("Hash.Prefix must be one of 2a, 2b, 2y")
		}
	}

	if c.Throttle.Enabled {
		if c.Throttle.MaxPerWindow <= 0 {
			return errors.New("Throttle.MaxPerWindow must be positive when throttling is enabled")
		}
		if c.Throttle.Window <= 0 {
			return errors.New("Throttle.Window must be positive when throttling is enabled")
		}
	}

	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit.BufferSize must be positive when auditing is enabled")
	}

	return nil
}

func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}
