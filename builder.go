package goBcrypt

import (
	"errors"

	"github.com/MrEthical07/goBcrypt/internal/pool"
	"github.com/MrEthical07/goBcrypt/internal/queue"
	"github.com/MrEthical07/goBcrypt/internal/rate"
	"github.com/MrEthical07/goBcrypt/password"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. A Builder is single-use: Build succeeds
// at most once.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient
	sink   AuditSink
	hasher password.Hasher

	built bool
}

// New returns a [Builder] preloaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the Redis client backing the submit throttle. The
// throttle stays inert without one.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink supplies the sink receiving diagnostic events. A nil
// sink with auditing enabled falls back to [NoOpSink].
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	return b
}

// WithHasher replaces the bcrypt primitive, primarily a test seam. The
// default is [password.Bcrypt] with the configured prefix.
func (b *Builder) WithHasher(h password.Hasher) *Builder {
	b.hasher = h
	return b
}

// WithWorkers overrides the pool size from the configuration.
func (b *Builder) WithWorkers(n int) *Builder {
	b.config.Pool.Workers = n
	return b
}

// Build validates the configuration and starts the engine: the worker
// pool and, when enabled, the audit dispatcher begin running before
// Build returns.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Throttle.Enabled && b.redis == nil {
		return nil, errors.New("Throttle requires redis client")
	}

	hasher := b.hasher
	if hasher == nil {
		h, err := password.NewBcrypt(cfg.Hash.Prefix)
		if err != nil {
			return nil, err
		}
		hasher = h
	}

	var limiter *rate.Limiter
	if cfg.Throttle.Enabled {
		limiter = rate.New(b.redis, rate.Config{
			MaxPerWindow: cfg.Throttle.MaxPerWindow,
			Window:       cfg.Throttle.Window,
		})
	}

	engine := &Engine{
		config:  cfg,
		hasher:  hasher,
		workers: pool.New(resolveWorkers(cfg.Pool.Workers)),
		results: queue.New(),
		limiter: limiter,
		metrics: NewMetrics(cfg.Metrics),
		audit:   newAuditDispatcher(cfg.Audit, b.sink),
	}

	b.built = true
	return engine, nil
}
