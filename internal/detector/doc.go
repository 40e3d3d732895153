// Package detector finds calls whose result must be used but is discarded.
//
// # Architecture Overview
//
//	        +------------------+         +------------------+
//	        |   analyzer.go    |         | cmd/retvalreport |
//	        |  (go/analysis)   |         |  (go/packages)   |
//	        +--------+---------+         +--------+---------+
//	                 |                            |
//	                 |                   +--------v---------+
//	                 |                   |      runner      |  one pass per package
//	                 |                   +--------+---------+
//	                 +-------------+--------------+
//	                               |
//	                      +--------v---------+
//	                      |     Detector     |
//	                      +--------+---------+
//	                               |
//	        +----------------------+----------------------+
//	        |                      |                      |
//	  +-----v------+        +------v------+       +-------v-------+
//	  | IsConsumed |        |  Resolver   |       |   Predicate   |
//	  | (context)  |        |  (callee)   |       | (marker sets) |
//	  +------------+        +-------------+       +---------------+
//
// # Execution Flow
//
//  1. [Detector.Scan] walks every call expression with its ancestor stack
//  2. [IsConsumed] classifies the call's context; consumed calls are skipped
//  3. The [Resolver] maps the callee to its generic origin [types.Func]
//  4. Functions with no results are skipped
//  5. The [Predicate] decides whether the function carries retval:mustuse
//  6. A [report.Diagnostic] is emitted at the call position
//
// # Context Classification
//
// A call is consumed when its parent reads the value:
//
//	x := f()       // assignment
//	g(f())         // argument
//	f().Field      // member access
//	return f()     // return
//
// Everything else discards it, including expression statements and the
// call of a go or defer statement:
//
//	f()
//	(f())
//	defer f()
package detector
