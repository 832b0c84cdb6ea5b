// Package structs implements generic vectors of machine words, their serialization and pools of buffers.
package structs

// Word64 is the set of element types a Vector can be instantiated with.
// All of them are serialized as a single little-endian 64-bit word.
type Word64 interface {
	~uint64 | ~int64 | ~float64 | ~uint | ~int
}
