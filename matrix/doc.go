// Package matrix holds the dense, symmetric travel-time matrix consumed by the
// shortest-path engine, together with the builder that fills it from a stream
// of lower-triangle tokens.
//
// The package provides:
//
//   - Distance: an explicit Finite(d) | Unreachable value. All arithmetic on
//     distances goes through Add and Less, which never overflow.
//   - DistanceMatrix: an n×n row-major buffer allocated once, with symmetric
//     writes (Set updates [i][j] and [j][i] together) and O(1) reads.
//   - Builder / Build / ReadTriangle: populate a DistanceMatrix from
//     n·(n−1)/2 tokens in row-major order over rows 1..n−1, columns 0..row−1.
//     A token is either a non-negative integer or the marker x / X.
//   - FromRows / FromInt64: adopt a matrix produced elsewhere after checking
//     it is square, symmetric, non-negative and has a zero diagonal.
//
// Token policy:
//
//	By default tokens are parsed strictly: anything that is neither a
//	non-negative integer nor x / X is reported as *InvalidTokenError.
//	WithLenientParse() switches to the permissive reading used by older
//	inputs, where a token starting with x / X is unreachable and any other
//	token contributes its leading decimal digits (no digits reads as 0).
//	Negative weights are rejected in both modes.
//
// Complexity:
//
//	NewDistanceMatrix / Clone: O(n²). At / Set: O(1). Build: O(n²).
//	Validators: O(n²) over the upper triangle.
package matrix
