// Package types holds the shared types of pybin: the filesystem
// abstraction, the script model produced by discovery, and the
// low-level operations consumed by the executors.
package types
