// File: doc.go
// Title: SBML Interpreter Package Documentation
// Description: Facade over lexer, parser and executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

/*
Package sbml runs SBML programs.

A program is one block:

	{
	  a = [1, 2, 3];
	  b = a;
	  a[0] = 9;
	  print(b[0]);
	}

Run parses the whole program before executing it, so a syntax error is
reported before any output. Eval runs snippets against an environment that
persists between calls and returns the value of a trailing expression.

Errors are *error.Error values with code SYNTAX, SEMANTIC or INTERRUPTED;
Diagnostic turns them into the one line diagnostics printed by the CLI.
*/
package sbml
