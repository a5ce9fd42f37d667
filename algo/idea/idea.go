// Package idea implements the IDEA block cipher: 64-bit blocks,
// 128-bit keys, 8 rounds over the mixed algebra of addition mod 2^16,
// multiplication mod 2^16+1 and XOR.
package idea

const (
	// KeySize is the length of a key in bytes.
	KeySize = 16
	// BlockSize is the length of a block in bytes.
	BlockSize = 8

	rounds     = 8
	numSubkeys = 6*rounds + 4 // 52
)
