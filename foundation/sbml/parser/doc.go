// File: doc.go
// Title: SBML Parser Package Documentation
// Description: Lexical analyzer and precedence parser for SBML programs and
//              interactive snippets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

/*
Package parser turns SBML source text into syntax trees.

The lexer produces tokens with line and column information. Characters that
start no token are reported and skipped; the parser then usually fails on
the resulting stream.

The parser is recursive descent with one function per precedence level,
lowest first:

	orelse < andalso < not < comparison < :: < in < + - < * / mod div
	< ** < unary minus < [ ] < #N < primary

Besides grammar errors (SYNTAX) it rejects two things while building the
tree, both reported as SEMANTIC errors: operands of andalso, orelse, not
and if/while conditions that cannot yield a boolean, and references to
names that no earlier assignment declares.
*/
package parser
