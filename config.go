// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config is the index configuration surface of spec.md §3: the maximum
// edit distance an index will answer for, whether terms and queries are
// case-folded, and the optional prefix-length optimisation.
type Config struct {
	MaxDistance  uint32  `mapstructure:"max_distance"`
	Lowercase    bool    `mapstructure:"lowercase"`
	PrefixLength *uint32 `mapstructure:"prefix_length"`
}

// HasPrefixLength reports whether the prefix-length optimisation is in
// effect.
func (c Config) HasPrefixLength() bool {
	return c.PrefixLength != nil
}

// effectivePrefix returns the prefix length to use when generating
// deletion variants: PrefixLength if set, else wordLen, the rune count
// of the word itself, so that the whole string is used.
func (c Config) effectivePrefix(wordLen uint32) uint32 {
	if c.PrefixLength == nil {
		return wordLen
	}
	return *c.PrefixLength
}

// ConfigOption configures a Config under construction via NewConfig.
type ConfigOption func(*Config)

// WithLowercase enables case folding of both terms and queries with
// strings.ToLower, which folds every Unicode letter, not only ASCII.
func WithLowercase(lowercase bool) ConfigOption {
	return func(c *Config) { c.Lowercase = lowercase }
}

// WithPrefixLength enables the prefix-length optimisation: only the
// first n runes of each term participate in deletion-variant
// generation. Must be >= the index's max edit distance.
func WithPrefixLength(n uint32) ConfigOption {
	return func(c *Config) { c.PrefixLength = &n }
}

// NewConfig builds a Config for an index with the given max edit
// distance. It rejects prefix_length < max_distance at construction
// time, per spec.md §9 (the source leaves this undefined; this
// implementation treats it as a configuration error).
func NewConfig(maxDistance uint32, opts ...ConfigOption) (Config, error) {
	cfg := Config{MaxDistance: maxDistance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PrefixLength != nil && *c.PrefixLength < c.MaxDistance {
		return configErrorf("prefix_length (%d) must be >= max_distance (%d)", *c.PrefixLength, c.MaxDistance)
	}
	return nil
}

// ConfigFromMap decodes a generic map — as produced by parsing JSON,
// YAML, or any other loosely-typed config source — into a Config using
// github.com/mitchellh/mapstructure, then validates it exactly as
// NewConfig would.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	var cfg Config
	if err := mapstructure.Decode(m, &cfg); err != nil {
		return Config{}, configErrorf("decoding config: %v", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML file at path, unmarshals it into a
// generic map with gopkg.in/yaml.v2, and pipes the result through
// ConfigFromMap. This lets an index's configuration surface live in an
// ordinary YAML file:
//
//	max_distance: 2
//	lowercase: true
//	prefix_length: 7
func LoadConfigFile(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, configErrorf("parsing yaml config: %v", err)
	}

	return ConfigFromMap(raw)
}
