// Package kernel contains shared value objects used across the domain model:
// identifiers and monetary amounts. Value objects are immutable and validate
// themselves; a zero value is invalid until produced by a constructor.
package kernel
