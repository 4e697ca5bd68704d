// Package translate holds the pure field-mapping functions of the
// migration: model identifier rewriting and tool permission conversion.
// Both are total, deterministic functions over their inputs with no I/O.
package translate
