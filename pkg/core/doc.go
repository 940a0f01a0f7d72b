// Package core defines the shared language of atomview.
//
// This package contains:
//   - Domain values (AtomicNumber, SubshellEntry, Configuration, ShellDistribution)
//   - Reference data types (ElementRecord) and the ElementLookup interface
//   - The exception table shape (Correction, ExceptionRule)
//   - Sentinel errors
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
