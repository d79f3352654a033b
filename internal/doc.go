// Package internal provides the analysis engine for dbctxguard.
//
// # Architecture Overview
//
//	                +------------------+
//	                |   analyzer.go    |  Entry point, flags
//	                +--------+---------+
//	                         |
//	                +--------v---------+
//	                |      Runner      |  FuncDecl callbacks
//	                +--------+---------+
//	                         |
//	      +------------------+------------------+
//	      |                  |                  |
//	+-----v-------+  +-------v-------+  +-------v------+
//	| constructor |  |   hierarchy   |  |    detect    |
//	| (New... ?)  |  | (controller?) |  | (parameters) |
//	+-------------+  +-------+-------+  +-------+------+
//	                         |                  |
//	                 +-------v-------+  +-------v------+
//	                 |   typeutil    |  |   classify   |
//	                 +---------------+  +--------------+
//
// # Flow
//
// For every *ast.FuncDecl outside generated files:
//
//  1. [constructor.EnclosingType] decides whether the function constructs a
//     struct declared in the package. If not, the declaration is skipped.
//  2. [hierarchy.IsController] walks the struct's embedded types looking for
//     the controller base. If it is not found, the declaration is skipped.
//  3. [detect.Detect] yields one diagnostic per parameter classified as a
//     database context, in declaration order.
//  4. Diagnostics on lines covered by //dbctxguard:ignore are dropped; the
//     rest go to pass.Report.
//
// Nothing is cached between declarations or passes.
package internal
