package crutils

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/hzhexee/mskzi-feistel/algo/idea"
	"github.com/hzhexee/mskzi-feistel/algo/primitives"
)

// below this size the goroutine fan-out costs more than it saves
const parallelThreshold = 1 << 12

// EncryptCBC encrypts padded plaintext in CBC mode. The data length
// must be a positive multiple of the block size; the IV substitutes for
// the previous ciphertext block of the first block. Encryption is an
// inherently sequential chain and is never parallelized.
func EncryptCBC(key []byte, data []byte, iv []byte) ([]byte, error) {
	if err := checkChainArgs(data, iv); err != nil {
		return nil, err
	}
	sk, err := idea.ExpandKey(key)
	if err != nil {
		return nil, err
	}

	res := make([]byte, len(data))
	prev := iv
	for i := 0; i < len(data); i += idea.BlockSize {
		copy(res[i:], data[i:i+idea.BlockSize])
		primitives.XorInplace(res[i:i+idea.BlockSize], prev, idea.BlockSize)
		ct, err := idea.EncryptBlock(res[i:i+idea.BlockSize], &sk)
		if err != nil {
			return nil, err
		}
		copy(res[i:], ct)
		prev = res[i : i+idea.BlockSize]
	}
	return res, nil
}

// DecryptCBC decrypts a CBC ciphertext. Each block needs only the
// preceding ciphertext block, which is already in hand, so large inputs
// are split across workers; key material and ciphertext are shared
// read-only.
func DecryptCBC(key []byte, data []byte, iv []byte) ([]byte, error) {
	if err := checkChainArgs(data, iv); err != nil {
		return nil, err
	}
	enc, err := idea.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	dec := idea.InvertKey(enc)

	res := make([]byte, len(data))
	if len(data) < parallelThreshold {
		return res, decryptBlocks(res, data, iv, &dec)
	}

	nblocks := len(data) / idea.BlockSize
	workers := primitives.Min(runtime.NumCPU(), nblocks)
	per := (nblocks + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		beg := w * per * idea.BlockSize
		if beg >= len(data) {
			break
		}
		end := primitives.Min(beg+per*idea.BlockSize, len(data))
		prev := iv
		if beg > 0 {
			prev = data[beg-idea.BlockSize : beg]
		}
		wg.Add(1)
		go func(w, beg, end int, prev []byte) {
			defer wg.Done()
			errs[w] = decryptBlocks(res[beg:end], data[beg:end], prev, &dec)
		}(w, beg, end, prev)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return res, nil
}

// decryptBlocks decrypts the blocks of data into res, chaining from
// prev (the IV or the ciphertext block preceding data).
func decryptBlocks(res, data, prev []byte, sk *[52]uint16) error {
	for i := 0; i < len(data); i += idea.BlockSize {
		pt, err := idea.DecryptBlock(data[i:i+idea.BlockSize], sk)
		if err != nil {
			return err
		}
		primitives.XorInplace(pt, prev, idea.BlockSize)
		copy(res[i:], pt)
		prev = data[i : i+idea.BlockSize]
	}
	return nil
}

func checkChainArgs(data []byte, iv []byte) error {
	if len(data) == 0 || len(data)%idea.BlockSize != 0 {
		return fmt.Errorf("data size %d is not a positive multiple of %d", len(data), idea.BlockSize)
	}
	if len(iv) != idea.BlockSize {
		return fmt.Errorf("IV size %d, expected %d", len(iv), idea.BlockSize)
	}
	return nil
}

// Encrypt pads the plaintext, generates a random IV and encrypts in
// CBC mode. The result is [8-byte IV][ciphertext]; the ciphertext is
// always 1..8 bytes longer than the plaintext, plus the IV.
func Encrypt(key []byte, data []byte) ([]byte, error) {
	iv := make([]byte, idea.BlockSize)
	if err := StochasticRand(iv); err != nil {
		return nil, fmt.Errorf("IV generation failed: %s", err)
	}
	ct, err := EncryptCBC(key, addPadding(data), iv)
	if err != nil {
		return nil, err
	}
	return append(iv, ct...), nil
}

// Decrypt reverses Encrypt: splits off the IV, decrypts the chain and
// strips the padding.
func Decrypt(key []byte, data []byte) ([]byte, error) {
	if len(data) < 2*idea.BlockSize || len(data)%idea.BlockSize != 0 {
		return nil, fmt.Errorf("data size %d, expected IV plus at least one block", len(data))
	}
	res, err := DecryptCBC(key, data[idea.BlockSize:], data[:idea.BlockSize])
	if err != nil {
		return nil, err
	}
	return removePadding(res)
}
