package idea

import "encoding/binary"

// EncryptBlock encrypts one 8-byte block with the encryption subkeys
// and returns the resulting block.
func EncryptBlock(block []byte, sk *[52]uint16) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}
	out := make([]byte, BlockSize)
	cryptBlock(out, block, sk)
	return out, nil
}

// DecryptBlock decrypts one 8-byte block. The subkeys must come from
// InvertKey; the round network itself is direction-agnostic.
func DecryptBlock(block []byte, sk *[52]uint16) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}
	out := make([]byte, BlockSize)
	cryptBlock(out, block, sk)
	return out, nil
}

// cryptBlock runs the eight rounds plus the output transform.
// Encryption and decryption differ only in the subkey set supplied.
func cryptBlock(dst, src []byte, sk *[52]uint16) {
	w1 := binary.BigEndian.Uint16(src[0:2])
	w2 := binary.BigEndian.Uint16(src[2:4])
	w3 := binary.BigEndian.Uint16(src[4:6])
	w4 := binary.BigEndian.Uint16(src[6:8])

	for i := 0; i < rounds; i++ {
		w1, w2, w3, w4 = round(w1, w2, w3, w4, sk, i)
	}

	binary.BigEndian.PutUint16(dst[0:2], mul(w1, sk[48]))
	binary.BigEndian.PutUint16(dst[2:4], add(w2, sk[49]))
	binary.BigEndian.PutUint16(dst[4:6], add(w3, sk[50]))
	binary.BigEndian.PutUint16(dst[6:8], mul(w4, sk[51]))
}

// round applies round i (0..7) to the four working words.
func round(w1, w2, w3, w4 uint16, sk *[52]uint16, i int) (uint16, uint16, uint16, uint16) {
	j := i * 6
	a := mul(w1, sk[j+0])
	b := add(w2, sk[j+1])
	c := add(w3, sk[j+2])
	d := mul(w4, sk[j+3])
	e := a ^ c
	f := b ^ d
	g := mul(e, sk[j+4])
	h := add(f, g)
	iv := mul(h, sk[j+5])
	jv := add(g, iv)
	if i == rounds-1 {
		// the last round keeps the middle words unswapped; the
		// decryption schedule relies on this asymmetry
		return a ^ iv, b ^ jv, c ^ iv, d ^ jv
	}
	return a ^ iv, c ^ iv, b ^ jv, d ^ jv
}

// CryptTrace runs the network like EncryptBlock/DecryptBlock but also
// records the four working words after every round and after the output
// transform: 9 states of 4 words each, as plain data for round-by-round
// visualization. The trace feeds nothing back into the cipher.
func CryptTrace(block []byte, sk *[52]uint16) ([][4]uint16, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}
	w1 := binary.BigEndian.Uint16(block[0:2])
	w2 := binary.BigEndian.Uint16(block[2:4])
	w3 := binary.BigEndian.Uint16(block[4:6])
	w4 := binary.BigEndian.Uint16(block[6:8])

	trace := make([][4]uint16, 0, rounds+1)
	for i := 0; i < rounds; i++ {
		w1, w2, w3, w4 = round(w1, w2, w3, w4, sk, i)
		trace = append(trace, [4]uint16{w1, w2, w3, w4})
	}
	final := [4]uint16{mul(w1, sk[48]), add(w2, sk[49]), add(w3, sk[50]), mul(w4, sk[51])}
	trace = append(trace, final)
	return trace, nil
}
