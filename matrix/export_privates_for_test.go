// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Builder options and token parsers.
//
// Purpose:
//   - Expose the resolved builderOptions and the unexported lenient parser to
//     matrix_test ONLY, without widening the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with builderOptions. If a field is added,
//     update GatherOptionsSnapshot_TestOnly accordingly.

// OptionsSnapshot is a read-only view of the options a Builder resolves.
type OptionsSnapshot struct {
	Lenient bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as NewBuilder does.
func GatherOptionsSnapshot_TestOnly(opts ...BuilderOption) OptionsSnapshot {
	o := gatherBuilderOptions(opts...)

	return OptionsSnapshot{Lenient: o.lenient}
}

// ExportedParseLenient exposes the lenient token parser.
var ExportedParseLenient = parseLenient
