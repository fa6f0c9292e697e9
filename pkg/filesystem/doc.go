// Package filesystem provides implementations of the types.FS
// interface: a passthrough to the OS filesystem for production use and
// an afero-backed implementation for tests.
package filesystem
