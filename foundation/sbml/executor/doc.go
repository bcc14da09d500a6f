// File: doc.go
// Title: SBML Executor Package Documentation
// Description: Tree-walking evaluator for SBML syntax trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial executor implementation

/*
Package executor evaluates SBML syntax trees against one flat Environment.

Blocks do not open scopes. Lists are shared by reference, so an index
assignment is visible through every binding of the same list. Every
runtime contract violation (type mismatch, index out of range, division by
zero, unbound name) ends the run with a SEMANTIC error; nothing is
recovered.

While loops check the context on every iteration, so a cancelled context
interrupts a non-terminating program with an INTERRUPTED error.
*/
package executor
