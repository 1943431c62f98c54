// Package core defines the shared language of the LeapPrep system.
//
// This package contains:
//   - The Value tagged union (Missing, Bool, Int, Float, Text, List)
//   - The missing-marker predicate and the equality policy used for
//     de-duplication
//   - Conversions between Values and plain Go values
//   - Python-literal rendering used by the CLI result line
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
