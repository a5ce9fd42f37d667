package idea

import "encoding/binary"

// ExpandKey expands a 16-byte key into the 52 encryption subkeys.
// The key is treated as a single 128-bit big-endian integer held in two
// uint64 halves; each subkey is the top 16 bits of the current state.
// The state rotates left by 16 after every extraction and by an extra
// 25 before each new group of eight subkeys.
func ExpandKey(key []byte) (sk [52]uint16, err error) {
	if len(key) != KeySize {
		return sk, KeySizeError(len(key))
	}
	hi := binary.BigEndian.Uint64(key[:8])
	lo := binary.BigEndian.Uint64(key[8:])
	for i := 0; i < numSubkeys; i++ {
		if i > 0 && i%8 == 0 {
			hi, lo = rotl128(hi, lo, 25)
		}
		sk[i] = uint16(hi >> 48)
		hi, lo = rotl128(hi, lo, 16)
	}
	return sk, nil
}

// rotl128 rotates the 128-bit value (hi, lo) left by n bits, 0 < n < 64.
func rotl128(hi, lo uint64, n uint) (uint64, uint64) {
	return hi<<n | lo>>(64-n), lo<<n | hi>>(64-n)
}

// InvertKey derives the decryption subkeys from the encryption subkeys.
// The output-transform quad becomes the first decryption group, with the
// multiplicative slots inverted and the additive slots negated. The
// eight round groups follow in reverse order; the two additive slots
// swap positions in the middle seven groups, and the two MA cross
// subkeys are copied unchanged, because they feed the XOR mixing step,
// which is its own inverse.
func InvertKey(enc [52]uint16) (dec [52]uint16) {
	dec[0] = mulInverse(enc[48])
	dec[1] = neg(enc[49])
	dec[2] = neg(enc[50])
	dec[3] = mulInverse(enc[51])
	dec[4] = enc[46]
	dec[5] = enc[47]
	for r := 1; r < rounds; r++ {
		j := r * 6
		dec[j+0] = mulInverse(enc[48-6*r])
		dec[j+1] = neg(enc[50-6*r])
		dec[j+2] = neg(enc[49-6*r])
		dec[j+3] = mulInverse(enc[51-6*r])
		dec[j+4] = enc[46-6*r]
		dec[j+5] = enc[47-6*r]
	}
	// the group mirroring encryption round 1 has no preceding round to
	// take cross subkeys from, and its additive slots do not swap
	dec[48] = mulInverse(enc[0])
	dec[49] = neg(enc[1])
	dec[50] = neg(enc[2])
	dec[51] = mulInverse(enc[3])
	return dec
}
