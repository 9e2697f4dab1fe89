/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/efx/apis"
)

const (
	// DefaultArrayLookupThreshold represents the default for ArrayLookupThreshold.
	// Ranges below it are small enough to be stored as a direct-indexed array.
	DefaultArrayLookupThreshold = 1024
	// MaxArrayLookupThreshold bounds ArrayLookupThreshold. Lookup tables are
	// sized from the threshold, so larger values are clamped to it.
	MaxArrayLookupThreshold = 1 << 16
	// DefaultMaxSparsePercent represents the default for MaxSparsePercent.
	DefaultMaxSparsePercent = 25
	// DefaultMaxCacheEntries represents the default for MaxCacheEntries.
	DefaultMaxCacheEntries = 256
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ArrayLookupThreshold: DefaultArrayLookupThreshold,
		MaxSparsePercent:     DefaultMaxSparsePercent,
		MaxCacheEntries:      DefaultMaxCacheEntries,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithArrayLookupThreshold sets the ArrayLookupThreshold option.
// Zero resets to the default; values above MaxArrayLookupThreshold are
// clamped to it.
func WithArrayLookupThreshold(n uint64) Option {
	return func(c *apis.Config) {
		c.ArrayLookupThreshold = ClampArrayLookupThreshold(n)
	}
}

// ClampArrayLookupThreshold maps n into [1, MaxArrayLookupThreshold],
// with zero meaning DefaultArrayLookupThreshold.
func ClampArrayLookupThreshold(n uint64) uint64 {
	switch {
	case n == 0:
		return DefaultArrayLookupThreshold
	case n > MaxArrayLookupThreshold:
		return MaxArrayLookupThreshold
	}
	return n
}

// WithMaxSparsePercent sets the MaxSparsePercent option.
func WithMaxSparsePercent(p uint64) Option {
	return func(c *apis.Config) {
		c.MaxSparsePercent = p
	}
}

// WithMaxCacheEntries sets the MaxCacheEntries option.
// A negative value resets to the default; zero disables fallback caching.
func WithMaxCacheEntries(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.MaxCacheEntries = DefaultMaxCacheEntries
			return
		}
		c.MaxCacheEntries = n
	}
}

// file mirrors apis.Config for YAML decoding. Pointers distinguish
// "absent" from "zero" so missing keys keep their defaults.
type file struct {
	ArrayLookupThreshold *uint64 `yaml:"array_lookup_threshold"`
	MaxSparsePercent     *uint64 `yaml:"max_sparse_percent"`
	MaxCacheEntries      *int    `yaml:"max_cache_entries"`
}

// LoadYAML decodes a configuration document. Unknown keys are rejected.
func LoadYAML(data []byte) (apis.Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and means "all defaults".
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("efx(config): decode yaml: %w", err)
	}

	var opts []Option
	if f.ArrayLookupThreshold != nil {
		opts = append(opts, WithArrayLookupThreshold(*f.ArrayLookupThreshold))
	}
	if f.MaxSparsePercent != nil {
		opts = append(opts, WithMaxSparsePercent(*f.MaxSparsePercent))
	}
	if f.MaxCacheEntries != nil {
		opts = append(opts, WithMaxCacheEntries(*f.MaxCacheEntries))
	}
	return NewConfig(opts...), nil
}

// LoadFile reads and decodes the YAML configuration at path.
func LoadFile(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("efx(config): %w", err)
	}
	return LoadYAML(data)
}

func sanitize(cfg apis.Config) apis.Config {
	cfg.ArrayLookupThreshold = ClampArrayLookupThreshold(cfg.ArrayLookupThreshold)
	if cfg.MaxCacheEntries < 0 {
		cfg.MaxCacheEntries = DefaultMaxCacheEntries
	}
	return cfg
}
