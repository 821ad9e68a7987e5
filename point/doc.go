// Package point defines the immutable 3D integer Point used by the circuits
// engine and parses the textual records it is loaded from.
//
// What & Why
//
//   - A Point is three non-negative integer coordinates (X, Y, Z). It is a plain
//     value type: copies are independent and equality is coordinate-wise (==).
//
//   - Coordinates are bounded by MaxCoordinate (2^31-1). Under that bound the
//     squared Euclidean distance between any two points fits in a uint64, which
//     lets the edges package order edges on exact integers instead of floats.
//
// Input format
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// One record per line, three comma-separated decimal integers, optional
// whitespace around the record and around each field. Leading and trailing
// blank lines of a whole input are ignored; every other line must be a record.
//
// Error Conditions
//
//   - ErrMalformedRecord: wrong field count, empty field, sign, non-digit,
//     or a coordinate above MaxCoordinate. ParseAll wraps it with the 1-based
//     line number; it never skips a bad line, since a dropped point silently
//     changes every downstream answer.
//
// Complexity: Parse is O(len(record)); ParseAll is O(len(text)).
package point
