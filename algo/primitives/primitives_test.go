package primitives

import (
	"bytes"
	"testing"
	"time"
	mrand "math/rand"
)

func TestXorInplace(t *testing.T) {
	seed := time.Now().Unix()
	mrand.Seed(seed)

	for i := 0; i < 64; i++ {
		sz := mrand.Intn(256) + 32
		data := make([]byte, sz)
		gamma := make([]byte, sz)
		mrand.Read(data)
		mrand.Read(gamma)
		orig := make([]byte, sz)
		copy(orig, data)

		XorInplace(data, gamma, sz)
		if !IsDeepNotEqual(data, orig, sz) {
			t.Fatalf("deep non-equal test failed, round %d with seed %d", i, seed)
		}

		XorInplace(data, gamma, sz)
		if !bytes.Equal(data, orig) {
			t.Fatalf("xor is not an involution, round %d with seed %d", i, seed)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 || Min(-1, 0) != -1 {
		t.Fatal("Min is broken")
	}
}
