// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvMaxObjects  = "RANKMERGE_MAX_OBJECTS"
	EnvBatchLimit  = "RANKMERGE_BATCH_LIMIT"
	EnvConcurrency = "RANKMERGE_CONCURRENCY"
	EnvFormat      = "RANKMERGE_FORMAT"
	EnvAddr        = "RANKMERGE_ADDR"
	EnvRateLimit   = "RANKMERGE_RATE_LIMIT"
	EnvRateBurst   = "RANKMERGE_RATE_BURST"
	EnvLogLevel    = "RANKMERGE_LOG_LEVEL"
	EnvLogFormat   = "RANKMERGE_LOG_FORMAT"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with every variable lookup reports as set.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxObjects, &c.Merge.MaxObjects},
		{EnvBatchLimit, &c.Merge.BatchLimit},
		{EnvConcurrency, &c.Merge.Concurrency},
		{EnvRateBurst, &c.Server.Burst},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: not an integer", ErrInvalid, f.key, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvRateLimit); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: not a number", ErrInvalid, EnvRateLimit, v)
		}
		c.Server.RateLimit = r
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvFormat, &c.Output.Format},
		{EnvAddr, &c.Server.Addr},
		{EnvLogLevel, &c.Log.Level},
		{EnvLogFormat, &c.Log.Format},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok {
			*f.dst = v
		}
	}

	return nil
}
