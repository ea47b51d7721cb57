// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// At the moment it only exposes `AsKey` which turns a JSON-RPC request id into a
// stable map key.
package conv
