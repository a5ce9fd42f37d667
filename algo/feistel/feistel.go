// Package feistel is a toy Feistel-network demonstrator built on a
// permutation-based key schedule. It is an educational aid, unrelated
// to the IDEA cipher, and makes no cryptographic claims.
package feistel

import "errors"

// Crypt encrypts or decrypts a block of even length. Decryption runs
// the same network with the round keys in reverse order. The round
// count is a free parameter of the demonstration.
func Crypt(block []byte, key []byte, decrypt bool, rounds int) ([]byte, error) {
	if len(block) == 0 || len(block)%2 != 0 {
		return nil, errors.New("feistel: block length must be even and positive")
	}
	if len(key) == 0 {
		return nil, errors.New("feistel: empty key")
	}
	if rounds < 1 {
		return nil, errors.New("feistel: at least one round required")
	}

	state := make([]byte, len(block))
	copy(state, block)
	for _, rk := range roundKeys(key, decrypt, rounds) {
		state = cryptRound(state, rk)
	}

	// final permutation: swap the halves
	half := len(state) / 2
	res := make([]byte, len(state))
	copy(res, state[half:])
	copy(res[half:], state[:half])
	return res, nil
}

// cryptRound splits the block, XORs the left half with f(right) and
// makes the old right half the new left half.
func cryptRound(block []byte, roundKey []byte) []byte {
	half := len(block) / 2
	left, right := block[:half], block[half:]

	res := make([]byte, len(block))
	copy(res, right)
	for i := 0; i < half; i++ {
		res[half+i] = left[i] ^ f(right[i], roundKey[i%len(roundKey)])
	}
	return res
}

// f is the round function: xor with the key byte, invert, shift left.
func f(b byte, k byte) byte {
	return ^(b ^ k) << 1
}

// roundKeys derives one key per round by swap-permuting the base key
// with the round index as the shift.
func roundKeys(key []byte, decrypt bool, rounds int) [][]byte {
	res := make([][]byte, rounds)
	for i := 0; i < rounds; i++ {
		res[i] = permute(key, i)
	}
	if decrypt {
		for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i], res[j] = res[j], res[i]
		}
	}
	return res
}

// permute swaps every position with the one shift places to its right,
// sequentially, wrapping around.
func permute(key []byte, shift int) []byte {
	word := make([]byte, len(key))
	copy(word, key)
	for i := range word {
		j := (i + shift) % len(word)
		word[i], word[j] = word[j], word[i]
	}
	return word
}
