// Package metadata is the key/value table that holds the persisted garage
// snapshot. Values are opaque bytes; the caller owns their encoding.
package metadata
