package bucketmap

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultInitialCapacity is the bucket count used when WithInitialCapacity is not given.
	DefaultInitialCapacity = 4
	// DefaultLoadFactor is the resize threshold used when WithLoadFactor is not given.
	DefaultLoadFactor = 0.75
	// MaxInitialCapacity is the largest bucket count New accepts.
	MaxInitialCapacity = 1 << 30
)

var (
	// ErrInvalidConfig is wrapped by every configuration error returned from New.
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInvalidCapacity   = fmt.Errorf("%w: initial capacity must be in [1, MaxInitialCapacity]", ErrInvalidConfig)
	ErrInvalidLoadFactor = fmt.Errorf("%w: load factor must be a positive finite number", ErrInvalidConfig)
	ErrNilHasher         = fmt.Errorf("%w: hasher must not be nil", ErrInvalidConfig)
)

type config struct {
	initialCapacity int
	loadFactor      float64
	hasher          Hasher
	logger          logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		initialCapacity: DefaultInitialCapacity,
		loadFactor:      DefaultLoadFactor,
		hasher:          PolynomialHash,
		logger:          logrus.StandardLogger(),
	}
}

func (c config) validate() error {
	if c.initialCapacity <= 0 || c.initialCapacity > MaxInitialCapacity {
		return fmt.Errorf("%w (got %d)", ErrInvalidCapacity, c.initialCapacity)
	}
	if c.loadFactor <= 0 || math.IsNaN(c.loadFactor) || math.IsInf(c.loadFactor, 0) {
		return fmt.Errorf("%w (got %v)", ErrInvalidLoadFactor, c.loadFactor)
	}
	if c.hasher == nil {
		return ErrNilHasher
	}
	return nil
}

// Option configures a HashMap or HashSet at construction time.
type Option func(*config)

// WithInitialCapacity sets the number of buckets allocated up front.
func WithInitialCapacity(n int) Option {
	return func(c *config) { c.initialCapacity = n }
}

// WithLoadFactor sets the size/capacity ratio above which the bucket array doubles.
func WithLoadFactor(f float64) Option {
	return func(c *config) { c.loadFactor = f }
}

// WithHasher replaces PolynomialHash as the bucket hash.
func WithHasher(h Hasher) Option {
	return func(c *config) { c.hasher = h }
}

// WithLogger routes the debug entry logged on every resize to l.
// A nil logger discards it.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l == nil {
			discard := logrus.New()
			discard.Out = io.Discard
			l = discard
		}
		c.logger = l
	}
}
