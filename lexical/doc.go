// Package lexical implements the XML Schema lexical spaces of primitive value types.
// Every parser trims XML whitespace (space, tab, carriage return, line feed) except ParseChar,
// and reports failures wrapping ErrSyntax or ErrRange.
package lexical
