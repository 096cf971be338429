// Package fs provides the OS-backed collaborators used by pathy: filesystem
// access, glob matching and environment lookups.
package fs
