// Package basic tests discarded results of marked functions.
package basic

import "fmt"

type Class struct {
	Length int
}

// GetString returns name.
//
//retval:mustuse
func GetString(name string) string { // want GetString:`markers\(retval:mustuse\)`
	return name
}

//retval:mustuse
func (c *Class) GetString(name string) string { // want GetString:`markers\(retval:mustuse\)`
	return name
}

//retval:mustuse
func (c *Class) Self() *Class { // want Self:`markers\(retval:mustuse\)`
	return c
}

//retval:mustuse
func Pair() (int, error) { // want Pair:`markers\(retval:mustuse\)`
	return 0, nil
}

func Unmarked(name string) string {
	return name
}

func Print(s string) {
	fmt.Println(s)
}

// ===== SHOULD REPORT =====

// [BAD]: Direct call
//
// Result of a marked function is dropped by an expression statement.
func badDirect() {
	GetString("x") // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Member access call
//
// Result of a marked method is dropped.
func badMemberAccess(c *Class) {
	c.GetString("x") // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Parenthesized call
//
// Grouping alone does not use the value.
func badParenthesized() {
	(GetString("x")) // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Nested parentheses
//
// Any depth of grouping is unwrapped.
func badNestedParentheses(c *Class) {
	((c.GetString("x"))) // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Multiple results
//
// Dropping all results of a marked function.
func badMultipleResults() {
	Pair() // want `The return value of 'Pair' should not be ignored`
}

// [BAD]: go statement
//
// The result of a function started as a goroutine is lost.
func badGoStmt() {
	go GetString("x") // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: defer statement
//
// The result of a deferred call is lost.
func badDeferStmt() {
	defer GetString("x") // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Chained method call
//
// Self() is consumed by the selector, the outer call is dropped.
func badChained(c *Class) {
	c.Self().GetString("x") // want `The return value of 'GetString' should not be ignored`
}

// [BAD]: Function literal
//
// Calls inside closures are checked too.
func badFuncLit() {
	f := func() {
		GetString("x") // want `The return value of 'GetString' should not be ignored`
	}
	f()
}

// [BAD]: Source order
//
// Every discarded call is reported in order.
func badMany(c *Class) {
	GetString("a")   // want `The return value of 'GetString' should not be ignored`
	c.GetString("b") // want `The return value of 'GetString' should not be ignored`
	Pair()           // want `The return value of 'Pair' should not be ignored`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Member access on result
//
// The result is used by the selector.
func goodMemberAccess(c *Class) {
	if c.Self().Length > 0 {
		Print("positive")
	}
}

// [GOOD]: Assignment
func goodAssignment() {
	s := GetString("x")
	Print(s)
}

// [GOOD]: Blank assignment
//
// Explicitly discarding the result is allowed.
func goodBlankAssignment() {
	_ = GetString("x")
	_, _ = Pair()
}

// [GOOD]: Var declaration
func goodVarDecl() {
	var s = GetString("x")
	Print(s)
}

// [GOOD]: Argument
func goodArgument() {
	Print(GetString("x"))
	Print((GetString("x")))
}

// [GOOD]: Comparison
func goodComparison() bool {
	return GetString("x") == "x"
}

// [GOOD]: Return
func goodReturn(c *Class) string {
	return c.GetString("x")
}

// [GOOD]: Parenthesized return
func goodParenthesizedReturn() string {
	return ((GetString("x")))
}

// [GOOD]: Condition and switch tag
func goodCondition() {
	if GetString("x") != "" {
		Print("non-empty")
	}

	switch GetString("x") {
	case "x":
	}
}

// [GOOD]: Composite literal
func goodCompositeLiteral() []string {
	return []string{GetString("x")}
}

// [GOOD]: Send statement
func goodSend(ch chan string) {
	ch <- GetString("x")
}

// [GOOD]: Range
func goodRange() {
	for range GetString("x") {
	}
}

// [GOOD]: Unmarked function
//
// Structurally identical discard of a function without the marker.
func goodUnmarked() {
	Unmarked("x")
}

// [GOOD]: Builtins and stdlib
func goodBuiltin() {
	copy([]byte{}, "x")
	fmt.Sprint("x")
}
