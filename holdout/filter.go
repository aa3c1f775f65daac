// SPDX-License-Identifier: MIT
package holdout

// edgeFilterConfig narrows which logical edges are eligible to be
// placed in a test set, shared by RandomEdgeHoldout and
// ConnectedHoldout.
type edgeFilterConfig struct {
	allowedTypes       map[string]struct{}
	minMultiplicity    uint64
	includeAllEdgeType bool
}

// EdgeFilterOption mutates an edgeFilterConfig.
type EdgeFilterOption func(*edgeFilterConfig)

// WithEdgeTypeAllowlist restricts eligible logical edges to the named
// edge types; edges with any other type (including untyped, "") are
// never chosen for the test set.
func WithEdgeTypeAllowlist(types ...string) EdgeFilterOption {
	return func(c *edgeFilterConfig) {
		c.allowedTypes = make(map[string]struct{}, len(types))
		for _, t := range types {
			c.allowedTypes[t] = struct{}{}
		}
	}
}

// WithMinMultiplicity requires a logical edge's (src,dst) pair to carry
// at least n parallel edges (across all types) before it is eligible
// for the test set — holding out the only connection between two nodes
// in a multigraph is rarely intended.
func WithMinMultiplicity(n uint64) EdgeFilterOption {
	return func(c *edgeFilterConfig) { c.minMultiplicity = n }
}

// WithIncludeAllEdgeTypes, when set, means choosing one logical edge of
// a (src,dst) pair for the test set pulls every parallel edge of that
// pair (every type) along with it, rather than just the one edge.
func WithIncludeAllEdgeTypes(v bool) EdgeFilterOption {
	return func(c *edgeFilterConfig) { c.includeAllEdgeType = v }
}

func buildFilterConfig(opts []EdgeFilterOption) edgeFilterConfig {
	var cfg edgeFilterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// eligible reports whether le passes cfg's allowlist/multiplicity gates.
func (cfg edgeFilterConfig) eligible(le logicalEdge) bool {
	if cfg.allowedTypes != nil {
		if _, ok := cfg.allowedTypes[le.edgeType]; !ok {
			return false
		}
	}
	if cfg.minMultiplicity > 0 && le.multiplicity < cfg.minMultiplicity {
		return false
	}
	return true
}
