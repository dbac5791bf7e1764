// Package debug gates the runtime assertions of the library.
//
// Build with the `debug` tag to enable them; release builds compile every
// assertion to a no-op.
package debug
