// Package value defines the runtime values of SBML: Integer, Real, Boolean,
// String, *List and Tuple. Lists are mutable and shared; all other kinds are
// immutable values. Format renders the text written by print.
package value
