//go:build !debug

package debug

// Debug reports whether the binary was built with the debug tag.
const Debug = false

// Assert does nothing if debug flag is not provided
// if debug flag is provided, panics if condition is false.
func Assert(condition bool, message ...string) {
}
