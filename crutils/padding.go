package crutils

import (
	"errors"

	"github.com/hzhexee/mskzi-feistel/algo/idea"
)

// ErrInvalidPadding is the only padding failure this package reports;
// which specific check failed is deliberately not disclosed.
var ErrInvalidPadding = errors.New("invalid padding")

// addPadding appends PKCS#7 padding: n bytes of value n, 1 <= n <= 8.
// Block-aligned input still receives a full extra block, so the result
// is always strictly longer than the input.
func addPadding(data []byte) []byte {
	n := idea.BlockSize - len(data)%idea.BlockSize
	res := make([]byte, len(data)+n)
	copy(res, data)
	for i := len(data); i < len(res); i++ {
		res[i] = byte(n)
	}
	return res
}

// removePadding validates and strips PKCS#7 padding.
func removePadding(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%idea.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n < 1 || n > idea.BlockSize {
		return nil, ErrInvalidPadding
	}
	for i := len(data) - n; i < len(data); i++ {
		if data[i] != byte(n) {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
