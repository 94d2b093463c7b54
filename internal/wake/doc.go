// Package wake provides the numeric primitives shared by the momentum models.
//
// The package defines the elementwise value types used throughout the solver:
//
//   - [Field]: a scalar or per-annulus array of values, with length-1
//     broadcasting so the same formula applies to a single operating point
//     or to a radial distribution across the rotor disk
//   - [State]: the stacked iteration variables of a momentum model
//
// All operations are value-semantics and allocate their results; a Field is
// never mutated in place by another Field's method.
package wake
