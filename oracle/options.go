package oracle

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/cscoracle/pkg/log"
)

const defaultParallelThreshold = 1000

type config struct {
	logger            log.Logger
	parallelThreshold int
	rowWise           bool
	src               rand.Source
}

// Option configures an oracle. Options that do not apply to a given oracle
// are ignored by it.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{parallelThreshold: defaultParallelThreshold}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// getLogger returns the WithLogger logger, or else the package-wide "oracle" logger
// as currently configured.
func (c *config) getLogger() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.GetLoggerWithName("oracle")
}

// WithLogger sets the logger used for debug traces of each prediction.
// Without it, the package-wide logger is looked up on every call.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithParallelThreshold sets the row count above which the linear oracles
// split the dot products across CPUs. Labels do not depend on it.
func WithParallelThreshold(n int) Option {
	return func(c *config) {
		c.parallelThreshold = n
	}
}

// WithRowWise makes RegOracle query its regressors one 1×d row at a time
// instead of once with the whole dataset. Use it with regressors that only
// accept single rows.
func WithRowWise(rowWise bool) Option {
	return func(c *config) {
		c.rowWise = rowWise
	}
}

// WithSource sets the random source RandomLinearThresh draws its weights
// from. Without it the global math/rand/v2 source is used.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}
