// Package kernel holds the shared building blocks of the domain model:
// value objects that carry no business behavior of their own but are used
// across aggregates, such as the UUID identifier type.
//
// Everything in this package is immutable and safe for concurrent use.
package kernel
