// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

// An Option configures the construction of a [Series].
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-allocates storage for n elements. Negative values
// are treated as zero.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

func applyOpts(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.sanitize()
	return cfg
}

// sanitize clamps all fields to usable values.
func (c *config) sanitize() {
	if c.capacity < 0 {
		c.capacity = 0
	}
}
