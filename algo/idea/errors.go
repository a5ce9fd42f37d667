package idea

import "strconv"

// KeySizeError is returned for keys of the wrong length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "idea: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError is returned for blocks of the wrong length.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "idea: invalid block size " + strconv.Itoa(int(b))
}
