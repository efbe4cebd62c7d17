// Package kernel contains the shared value objects of the warehouse domain:
// unique identifiers (UUID for work orders, formatted auto ids for boxes and
// the warehouse itself) and the Zone enumeration.
//
// Everything in this package is immutable and safe for concurrent reads.
package kernel
