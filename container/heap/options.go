// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Config selects the shape and ordering of a heap. The zero value is not
// a useful configuration; start from DefaultConfig, or from the
// constructor defaults, and override selectively.
type Config struct {
	// AsTree selects the explicit node tree backend rather than the flat
	// slice backend. The two are interchangeable; tree storage avoids
	// large contiguous allocations at the cost of a pointer chase per
	// slot.
	AsTree bool `yaml:"asTree" json:"asTree"`
	// Max orders the heap so that the largest thing is popped first;
	// unset it for a min heap. Constructors taking an explicit
	// comparator ignore Max since the comparator already fixes the
	// orientation.
	Max bool `yaml:"max" json:"max"`
	// Arity is the maximum number of children per slot and must be at
	// least 1.
	Arity int `yaml:"arity" json:"arity"`
}

// DefaultConfig returns the configuration used when no options are
// supplied: a binary max heap backed by tree storage.
func DefaultConfig() Config {
	return Config{AsTree: true, Max: true, Arity: 2}
}

// Validate reports every problem with the configuration rather than
// stopping at the first one.
func (c Config) Validate() error {
	errs := errors.M{}
	if c.Arity < 1 {
		errs.Append(fmt.Errorf("arity: must be at least 1, got %v", c.Arity))
	}
	return errs.Err()
}

// ParseConfig decodes a yaml configuration, applying DefaultConfig for
// any keys left unspecified. Unknown keys and mistyped values are
// errors, and every offending key is reported rather than just the
// first.
func ParseConfig(spec []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(spec, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Decoding is strict: keys
// other than asTree, max and arity are errors, as are values of the
// wrong type, and each error names the key it refers to. A value must
// carry the matching YAML scalar tag, so the YAML 1.1 spellings of
// booleans (yes, on and friends) are rejected rather than coerced.
// Keys that are absent leave the corresponding field unchanged.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping of configuration keys, got %v", value.Tag)
	}
	errs := errors.M{}
	for i := 0; i < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "asTree":
			errs.Append(decodeAs(key.Value, "a bool", "!!bool", val, &c.AsTree))
		case "max":
			errs.Append(decodeAs(key.Value, "a bool", "!!bool", val, &c.Max))
		case "arity":
			errs.Append(decodeAs(key.Value, "an int", "!!int", val, &c.Arity))
		default:
			errs.Append(fmt.Errorf("%v: unknown configuration key", key.Value))
		}
	}
	return errs.Err()
}

// decodeAs decodes a scalar node into dst after checking that the node
// carries the expected tag. The tag check is what keeps decoding strict:
// yaml.v3 itself coerces strings like "yes" into a bool destination.
func decodeAs[V any](key, kind, tag string, node *yaml.Node, dst *V) error {
	if node.Tag != tag {
		return fmt.Errorf("%v: expected %v, got %q", key, kind, node.Value)
	}
	if err := node.Decode(dst); err != nil {
		return fmt.Errorf("%v: expected %v, got %q", key, kind, node.Value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler using the field tags, so a
// marshaled configuration survives ParseConfig unchanged.
func (c Config) MarshalYAML() (any, error) {
	type plain Config
	return plain(c), nil
}

type options struct {
	cfg      Config
	sliceCap int
}

func defaultOptions() options {
	return options{cfg: DefaultConfig(), sliceCap: 1}
}

// Option represents an option for configuring a heap.
type Option func(o *options)

// WithConfig replaces the entire configuration, typically with one
// obtained from ParseConfig. Options applied after it still take
// effect.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithArity sets the maximum number of children per slot.
func WithArity(arity int) Option {
	return func(o *options) {
		o.cfg.Arity = arity
	}
}

// WithMax orders the heap to pop the largest thing first. This is the
// default.
func WithMax() Option {
	return func(o *options) {
		o.cfg.Max = true
	}
}

// WithMin orders the heap to pop the smallest thing first.
func WithMin() Option {
	return func(o *options) {
		o.cfg.Max = false
	}
}

// WithTreeStorage stores the heap as an explicit node tree. This is the
// default.
func WithTreeStorage() Option {
	return func(o *options) {
		o.cfg.AsTree = true
	}
}

// WithArrayStorage stores the heap in a flat slice.
func WithArrayStorage() Option {
	return func(o *options) {
		o.cfg.AsTree = false
	}
}

// WithSliceCap sets the initial capacity of the slice used by array
// storage. Tree storage ignores it.
func WithSliceCap(cap int) Option {
	return func(o *options) {
		o.sliceCap = cap
	}
}
