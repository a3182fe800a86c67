// Package internal contains the supporting infrastructure for swiperow:
// logging, layout helpers and velocity estimation. It must not depend on a
// GUI toolkit. Types and functions in this package are not part of the
// public API.
package internal
