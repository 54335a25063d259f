// Package employee defines the normalized employee record shown by the roster
// page, together with the filter predicate and the sort projection used to
// derive the displayed sequence from the accumulated store.
//
// Everything in this package is pure: filtering and sorting always return new
// slices and never reorder the caller's input.
package employee
