// Package kernel contains shared value objects used across the ordering domain:
//
//   - UUID: identity for entities and aggregates
//   - CPF: the normalized national customer identifier
//   - Money: currency amounts held as integer cents
//
// All value objects are immutable and constructed through validating factory
// functions; zero values fail Validate where a guard applies.
package kernel
