// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the triangle Builder.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes observable parsing behavior and is
//     covered by tests.

package matrix

// DefaultLenient is the token policy used when no option is given.
const DefaultLenient = false

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	lenient bool
}

// WithLenientParse accepts malformed tokens the permissive way:
// a token starting with x / X is Unreachable, any other token is read as its
// leading decimal digits, and a token with no leading digits reads as 0.
// Negative values are still rejected.
func WithLenientParse() BuilderOption {
	return func(o *builderOptions) {
		o.lenient = true
	}
}

// WithStrictParse restores the default policy; useful when options are
// assembled from configuration.
func WithStrictParse() BuilderOption {
	return func(o *builderOptions) {
		o.lenient = false
	}
}

func gatherBuilderOptions(opts ...BuilderOption) builderOptions {
	o := builderOptions{lenient: DefaultLenient}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
