package srp

import "crypto/sha1" //nolint:gosec // SHA-1 is the protocol's fixed hash function

// HashLength is the output width of the protocol hash function.
const HashLength = sha1.Size

// StrongKeyLength is the width of the interleaved session key K.
const StrongKeyLength = 2 * HashLength

// hashBytes folds the given byte buffers into a single digest.
func hashBytes(bufs ...[]byte) []byte {
	h := sha1.New() //nolint:gosec
	for _, b := range bufs {
		h.Write(b)
	}
	return h.Sum(nil)
}

// hashNumbers hashes a chain of numbers, each zero-padded big-endian to
// width bytes, and interprets the digest as a Number. This is the
// H(PAD(a) | PAD(b) | ...) helper the protocol formulas build on.
func hashNumbers(width int, nums ...*Number) *Number {
	bufs := make([][]byte, len(nums))
	for i, n := range nums {
		bufs[i] = n.PadBE(width)
	}
	return NewNumberFromBytesBE(hashBytes(bufs...))
}
