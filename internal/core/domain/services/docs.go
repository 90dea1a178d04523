// Package services contains stateless domain checks that do not belong to a
// single aggregate: duplicate detection over requested item lists and the
// stock availability comparison. Both are pure functions with no external
// side effects.
package services
