package crutils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/hzhexee/mskzi-feistel/algo/primitives"
)

// the entropy pool accumulates input from independent sources; every
// absorb or read rehashes the pool, so outputs never repeat
var pool [64]byte
var proof [64]byte

func init() {
	r := make([]byte, 32)
	n, err := crand.Read(r)
	if err != nil || n != len(r) {
		fmt.Printf("Error in init: crypto.Rand() failed: %s\n", err)
		os.Exit(0)
	}
	absorb(r)
}

// absorb mixes src into the pool
func absorb(src []byte) {
	h := sha3.NewShake256()
	h.Write(pool[:])
	h.Write(src)
	h.Read(pool[:])
}

func CollectEntropy() {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(time.Now().UnixNano()))
	absorb(b)
}

// Randomize fills dst from the entropy pool and advances the pool state.
func Randomize(dst []byte) {
	h := sha3.NewShake256()
	h.Write(pool[:])
	h.Read(pool[:])
	h.Read(dst)
}

func RandXor(dst []byte) {
	gamma := make([]byte, len(dst))
	Randomize(gamma)
	primitives.XorInplace(dst, gamma, len(dst))
}

// StochasticRand collects entropy from three independent sources.
func StochasticRand(dst []byte) error {
	n, err := crand.Read(dst)
	if err == nil && n == len(dst) {
		mathrand := make([]byte, len(dst))
		mrand.Read(mathrand)
		primitives.XorInplace(dst, mathrand, len(dst))
		RandXor(dst)
		AnnihilateData(mathrand)
	}
	return err
}

// AnnihilateData overwrites b with pool output after folding the
// previous content into the destruction proof.
func AnnihilateData(b []byte) {
	if len(b) == 0 {
		return
	}
	h := sha3.NewShake256()
	h.Write(proof[:])
	h.Write(b)
	h.Read(proof[:])
	Randomize(b)
}

// this function should be called before the program exits
func ProveDestruction() {
	fmt.Printf("Proof of destruction: %x\n", proof[32:])
}
