package idea

// The two moduli of the IDEA algebra. Multiplicative values range over
// 1..65536, with the zero word standing for 65536.
const (
	modAdd = 1 << 16
	modMul = 1<<16 + 1 // prime
)

// mul multiplies x and y modulo 2^16+1, with 0 interpreted as 2^16 on
// both input and output. The product of two remapped operands does not
// fit in 32 bits (65536 * 65536), hence the uint64 intermediate.
func mul(x, y uint16) uint16 {
	a, b := uint64(x), uint64(y)
	if a == 0 {
		a = modMul - 1
	}
	if b == 0 {
		b = modMul - 1
	}
	r := a * b % modMul
	if r == modMul-1 {
		return 0
	}
	return uint16(r)
}

// add is addition modulo 2^16.
func add(x, y uint16) uint16 {
	return x + y
}

// neg is the additive inverse modulo 2^16.
func neg(x uint16) uint16 {
	return -x
}

// mulInverse returns y such that mul(x, y) == 1, via the extended
// Euclidean algorithm on (2^16+1, x). 0 and 1 are self-inverse; every
// other word is invertible because the modulus is prime.
func mulInverse(x uint16) uint16 {
	if x <= 1 {
		return x
	}
	t0, t1 := 0, 1
	r0, r1 := modMul, int(x)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if t0 < 0 {
		t0 += modMul
	}
	return uint16(t0)
}
