package idea

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"
	mrand "math/rand"
)

func TestMulInverse(t *testing.T) {
	if mulInverse(0) != 0 {
		t.Fatal("inverse of zero must be zero")
	}
	if mulInverse(1) != 1 {
		t.Fatal("inverse of one must be one")
	}

	// exhaustive: 65537 is prime, so every word is invertible,
	// including 0 (which stands for 65536)
	for x := 0; x < 65536; x++ {
		y := mulInverse(uint16(x))
		if mul(uint16(x), y) != 1 {
			t.Fatalf("mul(%d, %d) != 1", x, y)
		}
	}
}

func TestMul(t *testing.T) {
	if mul(0, 0) != 1 {
		t.Fatal("65536 * 65536 mod 65537 must be 1")
	}
	if mul(1, 0) != 0 {
		t.Fatal("1 * 65536 mod 65537 must be 65536")
	}
	for i := 0; i < 1000; i++ {
		x := uint16(mrand.Int())
		if mul(x, 1) != x {
			t.Fatalf("one is not the identity for %d", x)
		}
		y := uint16(mrand.Int())
		if mul(x, y) != mul(y, x) {
			t.Fatalf("mul is not commutative for %d, %d", x, y)
		}
	}
}

func TestAdd(t *testing.T) {
	if add(0xFFFF, 1) != 0 {
		t.Fatal("add must wrap around modulo 2^16")
	}
	if add(12345, 0) != 12345 {
		t.Fatal("zero is not the additive identity")
	}
	if add(neg(3), 3) != 0 {
		t.Fatal("neg is not the additive inverse")
	}
}

func testSingleBlock(t *testing.T, key string, plain string, expected string) {
	exp, err := hex.DecodeString(expected)
	if err != nil {
		t.Fatalf("malformed test: %s", err)
	}

	enc, err := ExpandKey([]byte(key))
	if err != nil {
		t.Fatalf("key schedule failed: %s", err)
	}
	ct, err := EncryptBlock([]byte(plain), &enc)
	if err != nil {
		t.Fatalf("encryption failed: %s", err)
	}
	if !bytes.Equal(ct, exp) {
		t.Fatalf("wrong ciphertext %x, expected %s", ct, expected)
	}

	dec := InvertKey(enc)
	pt, err := DecryptBlock(ct, &dec)
	if err != nil {
		t.Fatalf("decryption failed: %s", err)
	}
	if !bytes.Equal(pt, []byte(plain)) {
		t.Fatalf("round trip broken: %x", pt)
	}
}

func TestBlockVectors(t *testing.T) {
	// the published IDEA test vector
	key, _ := hex.DecodeString("00010002000300040005000600070008")
	plain, _ := hex.DecodeString("0000000100020003")
	testSingleBlock(t, string(key), string(plain), "11fbed2b01986de5")

	// pinned regression vector
	testSingleBlock(t, "1234567890abcdef", "ABCDEFGH", "31fa0473b7200ab3")
}

func TestBlockRoundTrip(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	for i := 0; i < 256; i++ {
		key := make([]byte, KeySize)
		block := make([]byte, BlockSize)
		mrand.Read(key)
		mrand.Read(block)

		enc, err := ExpandKey(key)
		if err != nil {
			t.Fatalf("key schedule failed: %s", err)
		}
		dec := InvertKey(enc)

		ct, err := EncryptBlock(block, &enc)
		if err != nil {
			t.Fatalf("encryption failed: %s", err)
		}
		if bytes.Equal(ct, block) {
			t.Fatalf("ciphertext equals plaintext, round %d with seed %d", i, seed)
		}

		pt, err := DecryptBlock(ct, &dec)
		if err != nil {
			t.Fatalf("decryption failed: %s", err)
		}
		if !bytes.Equal(pt, block) {
			t.Fatalf("decrypted != expected, round %d with seed %d", i, seed)
		}
	}
}

func TestBlockErrors(t *testing.T) {
	var sk [52]uint16
	if _, err := EncryptBlock(make([]byte, 7), &sk); err == nil {
		t.Fatal("short block accepted")
	}
	if _, err := DecryptBlock(make([]byte, 9), &sk); err == nil {
		t.Fatal("long block accepted")
	}
	if _, err := CryptTrace(nil, &sk); err == nil {
		t.Fatal("empty block accepted")
	}
}

func TestCryptTrace(t *testing.T) {
	key := []byte("1234567890abcdef")
	block := []byte("ABCDEFGH")

	enc, err := ExpandKey(key)
	if err != nil {
		t.Fatalf("key schedule failed: %s", err)
	}
	trace, err := CryptTrace(block, &enc)
	if err != nil {
		t.Fatalf("trace failed: %s", err)
	}
	if len(trace) != 9 {
		t.Fatalf("wrong trace length %d", len(trace))
	}

	ct, err := EncryptBlock(block, &enc)
	if err != nil {
		t.Fatalf("encryption failed: %s", err)
	}
	final := trace[8]
	for i := 0; i < 4; i++ {
		w := uint16(ct[i*2])<<8 | uint16(ct[i*2+1])
		if final[i] != w {
			t.Fatalf("trace final state diverges from ciphertext at word %d", i)
		}
	}
}
