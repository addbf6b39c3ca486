// Package validate is the schema gate for mutation input.
//
// Each entity kind declares a fixed set of field constraints (required,
// minimum length, URL shape, enumeration membership, date format). A
// payload is normalized (whitespace trimmed) and checked against every
// constraint; violations are collected and returned together as one
// BAD_USER_INPUT error carrying a message per violated field, not just the
// first.
//
// Mutation handlers run the guard first, then this gate, then storage.
package validate
