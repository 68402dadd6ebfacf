// Package xconv converts XML lexical representations of value types (booleans, integers,
// floating point, decimal, char, date-time, GUID and enumerations) into typed Go values.
// To, TryTo, ToOrDefault and ToNullable select a parsing kind at compile time; Converter
// dispatches by the declared type of a destination.
package xconv
