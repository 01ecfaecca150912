// Package pddl parses domain and problem definitions out of (possibly noisy)
// generated text into domain values.
//
// Only syntactic structure is checked. Names used in actions, init or goal
// are never validated against the predicate schema.
package pddl
