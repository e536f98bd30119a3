package hashfunc

// Str - Polynomial string hashing. Every byte c of s is folded into h = (a*h + c) mod m, starting from h0.
//   - s is the key
//   - h0 is the seed
//   - a is the multiplier
//   - m is the table capacity, must be higher than 0 (zero)
//
// An empty string returns h0 mod m.
func Str(s string, h0, a uint64, m int) int {
	mustHaveCapacity(m)

	um := uint64(m)
	h := h0
	for i := 0; i < len(s); i++ {
		h = (a*h + uint64(s[i])) % um
	}

	return int(h % um)
}

// StrDJB2 - Bernstein's djb2, seed 5381 and multiplier 33
func StrDJB2(s string, m int) int {
	return Str(s, 5381, 33, m)
}

// StrDJB2a - The xor flavour of djb2, h = (33*h XOR c) mod m with seed 5381
func StrDJB2a(s string, m int) int {
	mustHaveCapacity(m)

	um := uint64(m)
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = (33*h ^ uint64(s[i])) % um
	}

	return int(h % um)
}

// StrJava - java.lang.String hashCode constants, seed 0 and multiplier 31
func StrJava(s string, m int) int {
	return Str(s, 0, 31, m)
}

// StrKR2e - The hash from Kernighan & Ritchie, 2nd edition, seed 0 and multiplier 31
func StrKR2e(s string, m int) int {
	return Str(s, 0, 31, m)
}

// StrSGISTL - The SGI STL hash for strings, seed 0 and multiplier 5
func StrSGISTL(s string, m int) int {
	return Str(s, 0, 5, m)
}

// StrSTLport - The STLport hash for strings, seed 0 and multiplier 33
func StrSTLport(s string, m int) int {
	return Str(s, 0, 33, m)
}
