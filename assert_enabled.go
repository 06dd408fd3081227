//go:build assert_enabled

package main

// Assert panics with msg when condition is false. It compiles to nothing
// unless the binary is built with -tags assert_enabled.
func Assert(condition bool, msg string) {
	if !condition {
		panic("assert failed: " + msg)
	}
}
