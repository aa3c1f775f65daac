// SPDX-License-Identifier: MIT
//
// Package config provides YAML-driven parameter loading for batch walk,
// holdout, and assembly jobs, grounded on ali01-mnemosyne's
// internal/config/config.go: load into a struct carrying validator
// tags, then Validate once at load time. The in-process library API
// (walk.Option, core.AssemblyOption, holdout.EdgeFilterOption) stays
// functional-options based; this package exists for operators driving a
// job from a file instead of Go code.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ranktrail/ranktrail/core"
	"github.com/ranktrail/ranktrail/walk"
)

// Config holds every YAML-loadable parameter group for a batch job.
type Config struct {
	Assembly AssemblyConfig `yaml:"assembly"`
	Walk     WalkConfig     `yaml:"walk"`
	Holdout  HoldoutConfig  `yaml:"holdout"`
}

// AssemblyConfig mirrors core.AssemblyConfig's caller-facing knobs.
type AssemblyConfig struct {
	Directed          bool `yaml:"directed"`
	DirectedEdgeList  bool `yaml:"directed_edge_list"`
	IgnoreDuplicates  bool `yaml:"ignore_duplicates"`
	EdgeListIsCorrect bool `yaml:"edge_list_is_correct"`
	HasEdgeTypes      bool `yaml:"has_edge_types"`
	HasWeights        bool `yaml:"has_weights"`
}

// WalkConfig mirrors walk.Config, with struct-tag validation of the
// bias weights and walk dimensions every walk step divides or loops by.
type WalkConfig struct {
	WalkLength int `yaml:"walk_length" validate:"required,gt=0"`
	NumWalks   int `yaml:"num_walks" validate:"required,gt=0"`

	ReturnWeight         float64 `yaml:"return_weight" validate:"gt=0"`
	ExploreWeight        float64 `yaml:"explore_weight" validate:"gt=0"`
	ChangeNodeTypeWeight float64 `yaml:"change_node_type_weight" validate:"gt=0"`
	ChangeEdgeTypeWeight float64 `yaml:"change_edge_type_weight" validate:"gt=0"`

	Seed        uint64 `yaml:"seed"`
	Parallelism int    `yaml:"parallelism" validate:"gte=0"`
}

// HoldoutConfig holds the parameters common to the edge/label holdout
// operations in package holdout. Not every field applies to every
// operation (K/KIndex only matter for k-fold); unused fields are
// simply ignored by the caller that consumes this struct.
type HoldoutConfig struct {
	TrainSize float64 `yaml:"train_size" validate:"gt=0,lt=1"`
	Seed      int64   `yaml:"seed"`
	Stratify  bool    `yaml:"stratify"`

	K      int `yaml:"k" validate:"omitempty,gte=2"`
	KIndex int `yaml:"k_index" validate:"omitempty,gte=0"`

	EdgeTypes          []string `yaml:"edge_types"`
	MinMultiplicity    uint64   `yaml:"min_multiplicity"`
	IncludeAllEdgeType bool     `yaml:"include_all_edge_types"`

	NegativeCount         uint64 `yaml:"negative_count"`
	OnlyFromSameComponent bool   `yaml:"only_from_same_component"`
}

// DefaultConfig returns configuration with the same defaults as each
// owning package's own DefaultConfig/zero value, so a YAML file only
// needs to override what it cares about.
func DefaultConfig() *Config {
	wc := walk.DefaultConfig()
	return &Config{
		Assembly: AssemblyConfig{
			DirectedEdgeList: true,
		},
		Walk: WalkConfig{
			WalkLength:           wc.WalkLength,
			NumWalks:             wc.NumWalks,
			ReturnWeight:         wc.ReturnWeight,
			ExploreWeight:        wc.ExploreWeight,
			ChangeNodeTypeWeight: wc.ChangeNodeTypeWeight,
			ChangeEdgeTypeWeight: wc.ChangeEdgeTypeWeight,
			Seed:                 wc.Seed,
			Parallelism:          wc.Parallelism,
		},
		Holdout: HoldoutConfig{
			TrainSize: 0.8,
			Seed:      1,
		},
	}
}

// LoadFromYAML loads a Config from path, overlaying YAML values onto
// DefaultConfig, then validates the result.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-controlled
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate struct-tag-checks Walk and Holdout, then applies the
// cross-field invariant validator tags can't express (K/KIndex
// ordering). Assembly is not checked.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Walk); err != nil {
		return fmt.Errorf("config: walk: %w", err)
	}
	if err := v.Struct(c.Holdout); err != nil {
		return fmt.Errorf("config: holdout: %w", err)
	}
	if c.Holdout.K > 0 && c.Holdout.KIndex >= c.Holdout.K {
		return fmt.Errorf("config: holdout: k_index %d out of range for k=%d", c.Holdout.KIndex, c.Holdout.K)
	}
	return nil
}

// WalkOptions converts the loaded parameters into walk.Config.
func (c *Config) WalkOptions() walk.Config {
	return walk.Config{
		WalkLength:           c.Walk.WalkLength,
		NumWalks:             c.Walk.NumWalks,
		ReturnWeight:         c.Walk.ReturnWeight,
		ExploreWeight:        c.Walk.ExploreWeight,
		ChangeNodeTypeWeight: c.Walk.ChangeNodeTypeWeight,
		ChangeEdgeTypeWeight: c.Walk.ChangeEdgeTypeWeight,
		Seed:                 c.Walk.Seed,
		Parallelism:          c.Walk.Parallelism,
	}
}

// AssemblyOptions converts the loaded parameters into a slice of
// core.AssemblyOption, ready to splice into a core.Build call.
func (c *Config) AssemblyOptions() []core.AssemblyOption {
	return []core.AssemblyOption{
		core.WithDirected(c.Assembly.Directed),
		core.WithDirectedEdgeList(c.Assembly.DirectedEdgeList),
		core.WithIgnoreDuplicates(c.Assembly.IgnoreDuplicates),
		core.WithEdgeListIsCorrect(c.Assembly.EdgeListIsCorrect),
		core.WithHasEdgeTypes(c.Assembly.HasEdgeTypes),
		core.WithHasWeights(c.Assembly.HasWeights),
	}
}
