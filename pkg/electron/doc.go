// Package electron derives ground-state electron configurations.
//
// The pipeline is strictly one-directional:
//
//	AtomicNumber -> Fill -> ApplyExceptions -> Format / Display
//	                                        -> ShellDistribution
//
// Every function is pure: inputs are never modified and results are
// recomputed on each call. All exported functions are safe for concurrent use.
package electron
