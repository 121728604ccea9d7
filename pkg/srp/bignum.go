package srp

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Number is an arbitrary-precision unsigned integer used for all SRP
// group arithmetic. It wraps math/big with the conversions the protocol
// needs: big-endian parsing of textual domain constants, endian-aware
// byte conversion, and zero padding to a fixed width for hashing.
//
// Numbers are immutable; every operation returns a fresh value.
type Number struct {
	v *big.Int
}

// NewNumber returns a Number holding the given small value.
func NewNumber(n uint64) *Number {
	return &Number{v: new(big.Int).SetUint64(n)}
}

// NewNumberFromBytesBE interprets raw as a big-endian unsigned integer.
func NewNumberFromBytesBE(raw []byte) *Number {
	return &Number{v: new(big.Int).SetBytes(raw)}
}

// NewNumberFromBytesLE interprets raw as a little-endian unsigned integer.
func NewNumberFromBytesLE(raw []byte) *Number {
	buf := make([]byte, len(raw))
	for i, b := range raw {
		buf[len(raw)-1-i] = b
	}
	return &Number{v: new(big.Int).SetBytes(buf)}
}

// ParseNumber parses a big-endian hex string, as used for textual domain
// constants. Whitespace is ignored and odd-length strings are accepted
// (an implicit leading zero nibble). Returns ErrInvalidHexString on
// malformed input.
func ParseNumber(s string) (*Number, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidHexString)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHexString, err)
	}
	return NewNumberFromBytesBE(raw), nil
}

// RandomNumber draws exactly nBytes of entropy from r and returns the
// resulting unsigned integer. The value is unbounded by any modulus;
// callers must pick nBytes so that derived exponents stay safely below N.
func RandomNumber(r io.Reader, nBytes int) (*Number, error) {
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to draw %d random bytes: %w", nBytes, err)
	}
	return NewNumberFromBytesBE(buf), nil
}

// ModPow returns (n^exp) mod mod.
func (n *Number) ModPow(exp, mod *Number) *Number {
	return &Number{v: new(big.Int).Exp(n.v, exp.v, mod.v)}
}

// Add returns n + other.
func (n *Number) Add(other *Number) *Number {
	return &Number{v: new(big.Int).Add(n.v, other.v)}
}

// Sub returns n - other. The caller must ensure n >= other; the protocol
// layer handles the modulus wraparound before subtracting.
func (n *Number) Sub(other *Number) *Number {
	return &Number{v: new(big.Int).Sub(n.v, other.v)}
}

// Mul returns n * other.
func (n *Number) Mul(other *Number) *Number {
	return &Number{v: new(big.Int).Mul(n.v, other.v)}
}

// Mod returns n mod mod.
func (n *Number) Mod(mod *Number) *Number {
	return &Number{v: new(big.Int).Mod(n.v, mod.v)}
}

// Cmp compares n and other, returning -1, 0 or +1.
func (n *Number) Cmp(other *Number) int {
	return n.v.Cmp(other.v)
}

// Equal reports whether n and other hold the same value.
func (n *Number) Equal(other *Number) bool {
	return n.Cmp(other) == 0
}

// IsZero reports whether n is zero.
func (n *Number) IsZero() bool {
	return n.v.Sign() == 0
}

// NumBytes returns ceil(bitLength / 8), the minimal byte width of n.
func (n *Number) NumBytes() int {
	return (n.v.BitLen() + 7) / 8
}

// BytesBE returns the minimal big-endian encoding of n. Zero encodes as
// an empty slice.
func (n *Number) BytesBE() []byte {
	return n.v.Bytes()
}

// BytesLE returns the minimal little-endian encoding of n.
func (n *Number) BytesLE() []byte {
	be := n.v.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// PadBE returns n as exactly width big-endian bytes, zero-padded on the
// high-order end. Values wider than width keep only the low-order width
// bytes; the handshake layer rejects oversized peer values before they
// reach here.
func (n *Number) PadBE(width int) []byte {
	be := n.v.Bytes()
	if len(be) >= width {
		return be[len(be)-width:]
	}
	out := make([]byte, width)
	copy(out[width-len(be):], be)
	return out
}

// PadLE returns n as exactly width little-endian bytes, zero-padded on
// the high-order (right) end.
func (n *Number) PadLE(width int) []byte {
	le := n.BytesLE()
	if len(le) >= width {
		return le[:width]
	}
	out := make([]byte, width)
	copy(out, le)
	return out
}

// Hex returns the uppercase big-endian hex representation of n.
func (n *Number) Hex() string {
	return strings.ToUpper(n.v.Text(16))
}

// String implements fmt.Stringer.
func (n *Number) String() string {
	return n.Hex()
}

// clear zeroizes the underlying value. Best effort: math/big may have
// left intermediate copies elsewhere, but the primary buffer is wiped.
func (n *Number) clear() {
	if n == nil || n.v == nil {
		return
	}
	n.v.SetInt64(0)
}
